package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// typeInfo is the JSON shape of a project type preset
type typeInfo struct {
	Type     models.ProjectType     `json:"type"`
	Label    string                 `json:"label"`
	Icon     string                 `json:"icon"`
	Color    string                 `json:"color"`
	ViewType models.ViewType        `json:"defaultViewType"`
	Settings models.ProjectSettings `json:"settings"`
}

// TypesCmd returns the project types subcommand
func TypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List project types and their presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.Formatter(cmd)

			infos := make([]typeInfo, 0, len(models.ProjectTypes))
			for _, pt := range models.ProjectTypes {
				p := models.PresetFor(pt)
				infos = append(infos, typeInfo{
					Type: pt, Label: p.Label, Icon: p.Icon, Color: p.Color,
					ViewType: p.DefaultViewType, Settings: p.Settings,
				})
			}

			if formatter.JSON {
				return formatter.Success(infos)
			}
			for _, info := range infos {
				if formatter.Quiet {
					fmt.Println(info.Type)
					continue
				}
				fmt.Printf("%s %s %s\n",
					info.Icon,
					styles.BoldColoredText(fmt.Sprintf("%-12s", info.Type), info.Color),
					styles.MutedStyle.Render("default view: "+string(info.ViewType)))
			}
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
