package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/views/gantt"
)

const (
	ganttLabelWidth = 24
	// GanttDayWidth is the number of terminal cells per day column
	GanttDayWidth   = 3
)

// GanttWidth is the terminal width of a chart with n day columns
func GanttWidth(n int) int {
	return ganttLabelWidth + 1 + n*GanttDayWidth
}

// GanttRects lays the timeline out in fixed-width terminal cells
func GanttRects(n int) []gantt.Rect {
	return gantt.UniformColumns(float64(n*GanttDayWidth), n)
}

// Gantt renders a day header row and one bar per task
func Gantt(chart gantt.Chart) string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", ganttLabelWidth+1))
	for _, c := range chart.Columns {
		label := fmt.Sprintf("%-*d", GanttDayWidth, c.Date.Day())
		switch {
		case c.IsToday:
			b.WriteString(styles.TodayStyle.Render(label))
		case c.IsWeekend:
			b.WriteString(styles.MutedStyle.Render(label))
		default:
			b.WriteString(styles.ValueStyle.Render(label))
		}
	}
	b.WriteString("\n")

	if len(chart.Bars) == 0 {
		b.WriteString(styles.MutedStyle.Render("No tasks with due dates in this window"))
		return b.String()
	}

	total := len(chart.Columns) * GanttDayWidth
	for _, bar := range chart.Bars {
		label := fmt.Sprintf("%-*s", ganttLabelWidth, truncate(bar.Task.Title, ganttLabelWidth))
		b.WriteString(styles.ValueStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(barCells(bar, total))
		b.WriteString(" ")
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%dd", bar.Interval.Days())))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func barCells(bar gantt.Bar, total int) string {
	left := int(math.Round(bar.Left))
	width := int(math.Round(bar.Width))
	if left < 0 {
		left = 0
	}
	if left+width > total {
		width = max(1, total-left)
	}

	fill := "█"
	if bar.Style.Border != "" {
		fill = "▓"
	}
	cells := styles.ColoredText(strings.Repeat(fill, width), bar.Style.Fill)
	if bar.Style.Border != "" {
		cells = styles.ColoredText("▐", bar.Style.Border) + cells
		if left > 0 {
			left--
		}
	}
	return strings.Repeat(" ", left) + cells
}
