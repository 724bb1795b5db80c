package render

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const cellWidth = 14

// CalendarOptions carry the inputs for due-date coloring
type CalendarOptions struct {
	Now         time.Time
	WarningDays int
	MaxPerCell  int // tasks listed per day before "+N more"; 0 means 3
}

// Month renders a month grid, one row per week
func Month(grid calendar.MonthGrid, opts CalendarOptions) string {
	var rows []string
	rows = append(rows, weekdayHeader())
	for _, week := range grid.Weeks() {
		rows = append(rows, dayRow(week, opts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Week renders seven day cells side by side
func Week(days []calendar.Day, opts CalendarOptions) string {
	if opts.MaxPerCell == 0 {
		opts.MaxPerCell = 10
	}
	return lipgloss.JoinVertical(lipgloss.Left, weekdayHeader(), dayRow(days, opts))
}

// Year renders a compact summary line per month
func Year(v calendar.YearView, opts CalendarOptions) string {
	var b strings.Builder
	for _, m := range v.Months {
		label := fmt.Sprintf("%-10s", m.Month.String())
		count := fmt.Sprintf("%3d tasks", m.TaskCount)
		style := styles.ValueStyle
		if m.Month == opts.Now.Month() && m.Year == opts.Now.Year() {
			style = styles.TodayStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(" ")
		b.WriteString(countStyle(m.TaskCount).Render(count))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d tasks in %d", v.TaskCount(), v.Year)))
	return b.String()
}

// Undated lists the tasks that have no due date
func Undated(tasks []*models.Task) string {
	undated := calendar.NoDueDate(tasks)
	if len(undated) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("No due date (%d)", len(undated))))
	for _, t := range undated {
		b.WriteString("\n  ")
		b.WriteString(styles.RenderStatus(t.Status))
		b.WriteString(" ")
		b.WriteString(styles.ValueStyle.Render(t.Title))
	}
	return b.String()
}

func weekdayHeader() string {
	cells := make([]string, len(weekdays))
	for i, d := range weekdays {
		cells[i] = styles.LabelStyle.Width(cellWidth + 2).Render(" " + d)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func dayRow(days []calendar.Day, opts CalendarOptions) string {
	cells := make([]string, len(days))
	for i, d := range days {
		cells[i] = dayCell(d, opts)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func dayCell(d calendar.Day, opts CalendarOptions) string {
	limit := opts.MaxPerCell
	if limit <= 0 {
		limit = 3
	}

	var b strings.Builder
	num := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.IsToday:
		b.WriteString(styles.TodayStyle.Render(num + " today"))
	case !d.IsCurrentMonth:
		b.WriteString(styles.MutedStyle.Render(num))
	default:
		b.WriteString(styles.ValueStyle.Render(num))
	}

	for i, t := range d.Tasks {
		if i == limit {
			b.WriteString("\n")
			b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("+%d more", len(d.Tasks)-limit)))
			break
		}
		c := calendar.Classify(t, opts.Now, opts.WarningDays)
		b.WriteString("\n")
		b.WriteString(styles.RenderDue(truncate(t.Title, cellWidth), c))
	}

	style := styles.ColumnStyle
	if d.IsToday {
		style = styles.SelectedStyle
	}
	return style.Width(cellWidth).Render(b.String())
}

func countStyle(n int) lipgloss.Style {
	if n == 0 {
		return styles.MutedStyle
	}
	return styles.ValueStyle
}
