package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (can also be provided as positional argument)")
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo task delete <id>"); err != nil {
			return err
		}

		task, err := resolveTask(c, id)
		if err != nil {
			return formatter.Fail(err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !formatter.JSON && !formatter.Quiet {
			fmt.Printf("Delete task '%s'? (y/N): ", task.Title)
			var response string
			_, _ = fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.TaskService.DeleteTask(c.Context(), task.ID); err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(task)
		}
		fmt.Printf("✓ Task '%s' deleted\n", task.Title)
		return nil
	})
}
