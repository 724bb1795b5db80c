// Package list holds the sortable, groupable list view command
//
// e.g., dotoo list ...
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	listview "github.com/thenoetrevino/dotoo/internal/views/list"
)

// ListCmd returns the list view command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show filtered tasks sorted and grouped",
		Long: `Show the filtered tasks of the active project as a list.

Sort fields: title, priority, status, dueDate, createdAt, category
Group fields: category, priority, status, assignedTo

Examples:
  dotoo list --sort=priority --desc
  dotoo list --group=status --hide-completed
`,
		RunE: runList,
	}

	def := listview.DefaultConfig()
	cmd.Flags().String("sort", string(def.SortBy), "Sort field")
	cmd.Flags().Bool("desc", def.Descending, "Sort descending")
	cmd.Flags().String("group", string(def.GroupBy), "Group field (empty for none)")
	cmd.Flags().Bool("hide-completed", !def.ShowCompleted, "Leave done tasks out")
	cli.AddOutputFlags(cmd)

	return cmd
}

func viewConfig(cmd *cobra.Command) (listview.Config, error) {
	cfg := listview.DefaultConfig()

	sortFlag, _ := cmd.Flags().GetString("sort")
	field, err := listview.ParseSortField(sortFlag)
	if err != nil {
		return cfg, err
	}
	cfg.SortBy = field
	cfg.Descending, _ = cmd.Flags().GetBool("desc")
	// naming a sort field without --desc means ascending
	if cmd.Flags().Changed("sort") && !cmd.Flags().Changed("desc") {
		cfg.Descending = false
	}

	groupFlag, _ := cmd.Flags().GetString("group")
	if cfg.GroupBy, err = listview.ParseGroupField(groupFlag); err != nil {
		return cfg, err
	}

	hide, _ := cmd.Flags().GetBool("hide-completed")
	cfg.ShowCompleted = !hide
	return cfg, nil
}

// groupView is the JSON shape of a group
type groupView struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		cfg, err := viewConfig(cmd)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		groups := listview.Apply(c.App.TaskService.FilteredTasks(), cfg)

		if formatter.Quiet {
			for _, g := range groups {
				for _, t := range g.Tasks {
					fmt.Println(t.ID)
				}
			}
			return nil
		}
		if formatter.JSON {
			out := make([]groupView, len(groups))
			for i, g := range groups {
				out[i] = groupView{Name: g.Name, Tasks: make([]string, len(g.Tasks))}
				for j, t := range g.Tasks {
					out[i].Tasks[j] = t.ID
				}
			}
			return formatter.Success(out)
		}

		fmt.Println(render.Groups(groups, c.App.Now(), c.App.Config.Calendar.WarningDays))
		return nil
	})
}
