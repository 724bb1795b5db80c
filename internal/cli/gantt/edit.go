package gantt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/gantt"
)

// StatusCmd returns the gantt status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Set a task's status from its timeline row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], gantt.DropdownStatus, args[1])
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// PriorityCmd returns the gantt priority subcommand
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <task-id> <priority>",
		Short: "Set a task's priority from its timeline row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], gantt.DropdownPriority, args[1])
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, taskID string, kind gantt.DropdownKind, value string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if _, err := c.App.TaskService.GetTask(taskID); err != nil {
			return formatter.Fail(fmt.Errorf("task '%s': %w", taskID, err))
		}

		var status models.Status
		var priority models.Priority
		var err error
		if kind == gantt.DropdownStatus {
			status, err = models.ParseStatus(value)
		} else {
			priority, err = models.ParsePriority(value)
		}
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		// open the row's dropdown and pick the value, as a click would
		d := c.App.Dropdowns
		d.Toggle(taskID, kind)
		if kind == gantt.DropdownStatus {
			err = d.SelectStatus(c.Context(), status)
		} else {
			err = d.SelectPriority(c.Context(), priority)
		}
		if err != nil {
			return formatter.Fail(err)
		}

		task, err := c.App.TaskService.GetTask(taskID)
		if err != nil {
			return formatter.Fail(err)
		}
		if formatter.JSON || formatter.Quiet {
			return formatter.Success(task)
		}
		fmt.Printf("✓ Task '%s' is now %s / %s\n", task.Title, task.Status.Label(), task.Priority)
		return nil
	})
}
