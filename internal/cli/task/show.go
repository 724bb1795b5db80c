package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long: `Display all details of a task. The description is rendered as markdown and
the code snippet is highlighted. Without an id the selected task is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (can also be provided as positional argument)")
	cmd.Flags().Bool("select", false, "Also make this the selected task")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		svc := c.App.TaskService

		id := cli.IDArg(cmd, args)
		if id == "" {
			if sel := svc.SelectedTask(); sel != nil {
				id = sel.ID
			}
		}
		if err := cli.RequireID(formatter, id, "dotoo task show <id> or dotoo task show --id=<id>"); err != nil {
			return err
		}

		task, err := resolveTask(c, id)
		if err != nil {
			return formatter.Fail(err)
		}

		if sel, _ := cmd.Flags().GetBool("select"); sel {
			if err := svc.SelectTask(task.ID); err != nil {
				return formatter.Fail(err)
			}
		}

		now := c.App.Now()
		warningDays := c.App.Config.Calendar.WarningDays

		if formatter.Quiet {
			return formatter.Success(task)
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success":        true,
				"task":           task,
				"classification": calendar.Classify(task, now, warningDays).String(),
				"overdue":        task.IsOverdue(now),
			})
		}

		fmt.Println(render.TaskCard(task, render.CardOptions{
			Now:         now,
			WarningDays: warningDays,
			Dark:        svc.IsDarkMode(),
		}))
		return nil
	})
}
