package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in the active project",
		Long: `List the tasks of the active project that match the saved filters
(see 'dotoo filter'). Use --all to ignore the filters.`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only tasks with this status")
	cmd.Flags().Bool("all", false, "Ignore the saved filters")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		svc := c.App.TaskService

		var tasks []*models.Task
		statusFlag, _ := cmd.Flags().GetString("status")
		all, _ := cmd.Flags().GetBool("all")

		switch {
		case all:
			tasks = taskservice.Filter(svc.GetAllTasks(), c.App.ProjectService.ActiveProjectID(), models.SearchFilters{}, c.App.Now())
		case statusFlag != "":
			status, err := models.ParseStatus(statusFlag)
			if err != nil {
				return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
			}
			tasks = svc.TasksByStatus(status)
		default:
			tasks = svc.FilteredTasks()
		}
		if all && statusFlag != "" {
			status, err := models.ParseStatus(statusFlag)
			if err != nil {
				return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
			}
			tasks = byStatus(tasks, status)
		}

		if formatter.Quiet {
			for _, t := range tasks {
				fmt.Println(t.ID)
			}
			return nil
		}

		if formatter.JSON {
			if tasks == nil {
				tasks = []*models.Task{}
			}
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success": true,
				"tasks":   tasks,
			})
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("Found %d tasks:\n\n", len(tasks))
		for _, t := range tasks {
			fmt.Println("  " + render.TaskLine(t, c.App.Now(), c.App.Config.Calendar.WarningDays))
		}
		return nil
	})
}

func byStatus(tasks []*models.Task, status models.Status) []*models.Task {
	var out []*models.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
