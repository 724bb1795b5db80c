package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/dnd"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <target>",
		Short: "Drop a task on a board column or on another task",
		Long: `Move a task the way dragging it on the board does. The target is a status
(todo, doing, done) or another task's id, in which case the task takes that
task's status.

Examples:
  dotoo task move <id> doing
  dotoo task move <id> <other-task-id>
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		task, err := resolveTask(c, args[0])
		if err != nil {
			return formatter.Fail(err)
		}

		target := args[1]
		if s, err := models.ParseStatus(target); err == nil {
			target = dnd.ColumnKey(s)
		} else if over, err := resolveTask(c, target); err == nil {
			target = over.ID
		}

		engine := c.App.Kanban
		engine.DragStart(task.ID)
		engine.DragOver(target)
		outcome, err := engine.Drop(c.Context(), task.ID, target)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			fmt.Println(task.ID)
			return nil
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"id":      task.ID,
					"applied": outcome.Applied,
					"target":  outcome.Target.Kind.String(),
					"from":    task.Status,
					"status":  outcome.Status,
				},
			})
		}

		if !outcome.Applied {
			fmt.Printf("Task '%s' stays in %s\n", task.Title, task.Status.Label())
			return nil
		}
		fmt.Printf("✓ Task '%s' moved from %s to %s\n", task.Title, task.Status.Label(), outcome.Status.Label())
		return nil
	})
}
