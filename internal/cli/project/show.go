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

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Long:  "Display a project with its settings and task counts. Defaults to the active project.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if id == "" {
			id = c.App.ProjectService.ActiveProjectID()
		}

		project, err := c.App.ProjectService.GetProject(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("project '%s': %w", id, err))
		}

		var tasks []*models.Task
		for _, t := range c.App.TaskService.GetAllTasks() {
			if t.ProjectID == project.ID {
				tasks = append(tasks, t)
			}
		}
		stats := models.ComputeStats(tasks, c.App.Now())

		if formatter.Quiet {
			return formatter.Success(project)
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success": true,
				"project": project,
				"stats":   stats,
				"active":  project.ID == c.App.ProjectService.ActiveProjectID(),
			})
		}

		fmt.Println(render.ProjectCard(project, stats))
		return nil
	})
}
