package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// StatsCmd returns the task stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count the filtered tasks by status, urgency and lateness",
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		stats := c.App.TaskService.Stats()

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(stats)
		}

		row := func(label string, n int, color string) {
			fmt.Printf("%s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%-14s", label)), styles.BoldColoredText(fmt.Sprint(n), color))
		}
		row("Total:", stats.Total, styles.Scheme.Normal)
		row("To Do:", stats.Todo, styles.StatusColor(models.StatusTodo))
		row("In Progress:", stats.Doing, styles.StatusColor(models.StatusDoing))
		row("Done:", stats.Done, styles.StatusColor(models.StatusDone))
		row("High priority:", stats.HighPriority, styles.PriorityColor(models.PriorityHigh))
		row("Overdue:", stats.Overdue, styles.Scheme.Overdue)
		return nil
	})
}
