package calendar

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/dnd"
)

// RescheduleCmd returns the calendar reschedule subcommand
func RescheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reschedule <task-id> <date>",
		Short: "Drop a task on a calendar day",
		Long: `Move a task's due date to local noon of the given day, the way dropping it
on a calendar cell does. The date is YYYY-MM-DD or a day key (day-YYYY-MM-DD).`,
		Args: cobra.ExactArgs(2),
		RunE: runReschedule,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReschedule(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		task, err := c.App.TaskService.GetTask(args[0])
		if err != nil {
			return formatter.Fail(fmt.Errorf("task '%s': %w", args[0], err))
		}

		target := args[1]
		if dnd.ParseTarget(target).Kind != dnd.TargetDay {
			day, err := cli.ParseDate(target, c.App.Location)
			if err != nil {
				return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
			}
			target = dnd.DayKey(day)
		}

		r := c.App.Rescheduler
		r.DragStart(task.ID)
		r.DragOver(target)
		outcome, err := r.Drop(c.Context(), task.ID, target)
		if err != nil {
			return formatter.Fail(err)
		}

		updated, err := c.App.TaskService.GetTask(task.ID)
		if err != nil {
			return formatter.Fail(err)
		}
		if formatter.JSON || formatter.Quiet {
			return formatter.Success(updated)
		}
		if !outcome.Applied {
			fmt.Printf("Task '%s' unchanged\n", updated.Title)
			return nil
		}
		fmt.Printf("✓ Task '%s' due %s\n", updated.Title, outcome.DueDate.Format("Mon Jan 2, 2006"))
		return nil
	})
}
