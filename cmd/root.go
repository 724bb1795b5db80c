package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli/board"
	"github.com/thenoetrevino/dotoo/internal/cli/calendar"
	"github.com/thenoetrevino/dotoo/internal/cli/data"
	"github.com/thenoetrevino/dotoo/internal/cli/filter"
	"github.com/thenoetrevino/dotoo/internal/cli/gantt"
	"github.com/thenoetrevino/dotoo/internal/cli/list"
	"github.com/thenoetrevino/dotoo/internal/cli/project"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/cli/task"
	"github.com/thenoetrevino/dotoo/internal/cli/theme"
	"github.com/thenoetrevino/dotoo/internal/config"
	"github.com/thenoetrevino/dotoo/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dotoo",
	Short: "Dotoo - a personal task and project tracker",
	Long: `Dotoo tracks tasks across projects and shows them as a kanban board,
a calendar, a Gantt timeline or a sorted list.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
}

func init() {
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(filter.FilterCmd())
	rootCmd.AddCommand(list.ListCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(calendar.CalendarCmd())
	rootCmd.AddCommand(calendar.RescheduleCmd())
	rootCmd.AddCommand(gantt.GanttCmd())
	rootCmd.AddCommand(gantt.StatusCmd())
	rootCmd.AddCommand(gantt.PriorityCmd())
	rootCmd.AddCommand(data.DataCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
}

// bootstrap sets up file logging and the color scheme before any command
func bootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logging.Init(cfg.DataDir, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	return nil
}

// Execute runs the root command under ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
