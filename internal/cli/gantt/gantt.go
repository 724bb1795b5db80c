// Package gantt holds the timeline view commands
//
// e.g., dotoo gantt ...
package gantt

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/config"
	"github.com/thenoetrevino/dotoo/internal/views/gantt"
)

// GanttCmd returns the gantt command
func GanttCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Show filtered tasks on a timeline",
		Long: `Show each dated task as a bar from its creation to its due date.

Examples:
  dotoo gantt                 # window around today
  dotoo gantt --offset=2      # two weeks ahead
  dotoo gantt --json --px-width=1400
`,
		RunE: runGantt,
	}

	cmd.Flags().String("date", "", "Cursor date (YYYY-MM-DD, default today)")
	cmd.Flags().Int("offset", 0, "Weeks forward (or back, when negative) from the cursor")
	cmd.Flags().Float64("px-width", 0, "Container width in pixels for the JSON layout; 0 reports unmeasured bars")
	cli.AddOutputFlags(cmd)

	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(PriorityCmd())

	return cmd
}

func options(cfg *config.Config) gantt.Options {
	return gantt.Options{
		WindowDays:    cfg.Gantt.WindowDays,
		LeadDays:      cfg.Gantt.LeadDays,
		FallbackWidth: cfg.Gantt.FallbackWidth,
		MinBarWidth:   cfg.Gantt.MinBarWidth,
	}
}

func runGantt(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		loc := c.App.Location
		now := c.App.Now().In(loc)

		cursor := now
		if v, _ := cmd.Flags().GetString("date"); v != "" {
			d, err := cli.ParseDate(v, loc)
			if err != nil {
				return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
			}
			cursor = d
		}
		offset, _ := cmd.Flags().GetInt("offset")
		for ; offset > 0; offset-- {
			cursor = gantt.Navigate(cursor, 1)
		}
		for ; offset < 0; offset++ {
			cursor = gantt.Navigate(cursor, -1)
		}

		opts := options(c.App.Config)
		cols := gantt.Timeline(cursor, now, opts, loc)
		tasks := c.App.TaskService.FilteredTasks()
		scheme := c.App.Config.ColorScheme

		if formatter.Quiet {
			for _, bar := range gantt.Layout(tasks, cols, nil, opts, &scheme).Bars {
				fmt.Println(bar.Task.ID)
			}
			return nil
		}

		if formatter.JSON {
			var rects []gantt.Rect
			if px, _ := cmd.Flags().GetFloat64("px-width"); px > 0 {
				rects = gantt.UniformColumns(px, len(cols))
			}
			return formatter.Success(chartView(gantt.Layout(tasks, cols, rects, opts, &scheme)))
		}

		// terminal cells: one day is GanttDayWidth wide and a bar is at least one day
		termOpts := opts
		termOpts.MinBarWidth = render.GanttDayWidth
		chart := gantt.Layout(tasks, cols, render.GanttRects(len(cols)), termOpts, &scheme)

		first, last := cols[0].Date, cols[len(cols)-1].Date
		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))))
		fmt.Println(render.Gantt(chart))
		return nil
	})
}

// barView is the JSON shape of a positioned bar
type barView struct {
	TaskID   string  `json:"taskId"`
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Days     int     `json:"days"`
	StartCol int     `json:"startCol"`
	EndCol   int     `json:"endCol"`
	Left     float64 `json:"left"`
	Width    float64 `json:"width"`
	Measured bool    `json:"measured"`
	Fill     string  `json:"fill"`
	Border   string  `json:"border,omitempty"`
}

type columnView struct {
	Date      string `json:"date"`
	IsWeekend bool   `json:"isWeekend"`
	IsToday   bool   `json:"isToday"`
}

type ganttView struct {
	Columns []columnView `json:"columns"`
	Bars    []barView    `json:"bars"`
}

func chartView(chart gantt.Chart) ganttView {
	v := ganttView{Columns: make([]columnView, len(chart.Columns)), Bars: make([]barView, len(chart.Bars))}
	for i, col := range chart.Columns {
		v.Columns[i] = columnView{Date: col.Date.Format(time.DateOnly), IsWeekend: col.IsWeekend, IsToday: col.IsToday}
	}
	for i, b := range chart.Bars {
		v.Bars[i] = barView{
			TaskID:   b.Task.ID,
			Title:    b.Task.Title,
			Start:    b.Interval.Start.Format(time.DateOnly),
			End:      b.Interval.End.Format(time.DateOnly),
			Days:     b.Interval.Days(),
			StartCol: b.StartCol,
			EndCol:   b.EndCol,
			Left:     b.Left,
			Width:    b.Width,
			Measured: b.Measured,
			Fill:     b.Style.Fill,
			Border:   b.Style.Border,
		}
	}
	return v
}
