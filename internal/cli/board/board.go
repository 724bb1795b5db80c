// Package board holds the kanban board command
//
// e.g., dotoo board ...
package board

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/views/kanban"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the kanban board of the active project",
		Long: `Show the filtered tasks of the active project in To Do, In Progress and
Done columns. With --interactive the board opens full screen and cards can be
lifted and dropped onto another column or card.

Examples:
  dotoo board
  dotoo board --json
  dotoo board -i
`,
		RunE: runBoard,
	}

	cmd.Flags().BoolP("interactive", "i", false, "Open the interactive board")
	cmd.Flags().Int("width", 0, "Board width in cells (default: terminal width)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// columnView is the JSON shape of a column
type columnView struct {
	Status string   `json:"status"`
	Title  string   `json:"title"`
	Key    string   `json:"key"`
	Tasks  []string `json:"tasks"`
}

func runBoard(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			ctx, cancel := context.WithCancel(c.Context())
			defer cancel()
			p := tea.NewProgram(NewModel(ctx, c.App), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return formatter.FailWith(cli.ExitError, "TUI_ERROR", err, "")
			}
			return nil
		}

		cols := kanban.Board(c.App.TaskService.FilteredTasks())

		if formatter.Quiet {
			for _, col := range cols {
				for _, t := range col.Tasks {
					fmt.Println(t.ID)
				}
			}
			return nil
		}
		if formatter.JSON {
			out := make([]columnView, len(cols))
			for i, col := range cols {
				out[i] = columnView{Status: string(col.Status), Title: col.Title, Key: col.Key, Tasks: make([]string, len(col.Tasks))}
				for j, t := range col.Tasks {
					out[i].Tasks[j] = t.ID
				}
			}
			return formatter.Success(out)
		}

		width, _ := cmd.Flags().GetInt("width")
		if width == 0 {
			width = cli.TerminalWidth(0)
		}
		fmt.Println(render.Board(cols, render.BoardOptions{
			Width:       width,
			Now:         c.App.Now(),
			WarningDays: c.App.Config.Calendar.WarningDays,
		}))
		return nil
	})
}
