package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects. The active project is marked with *.",
		RunE:  runList,
	}

	cmd.Flags().String("type", "", "Only list projects of this type")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		svc := c.App.ProjectService

		projects := svc.GetAllProjects()
		if typeFilter, _ := cmd.Flags().GetString("type"); typeFilter != "" {
			pt, err := models.ParseProjectType(typeFilter)
			if err != nil {
				return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
			}
			projects = svc.GetProjectsByType(pt)
		}

		// Output in appropriate format
		if formatter.Quiet {
			for _, p := range projects {
				fmt.Println(p.ID)
			}
			return nil
		}

		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success":         true,
				"activeProjectId": svc.ActiveProjectID(),
				"projects":        projects,
			})
		}

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		fmt.Printf("Found %d projects:\n\n", len(projects))
		for _, p := range projects {
			fmt.Println(render.ProjectLine(p, svc.ActiveProjectID()))
		}
		return nil
	})
}
