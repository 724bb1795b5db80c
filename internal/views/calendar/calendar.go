// Package calendar buckets tasks into day cells at month, week and year zoom
package calendar

import (
	"math"
	"time"

	"github.com/thenoetrevino/dotoo/internal/dnd"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// DefaultWarningDays is the due-soon horizon
const DefaultWarningDays = 3

// Day is one grid cell
type Day struct {
	Date           time.Time // midnight in the grid's location
	Key            string    // drop target id
	IsCurrentMonth bool
	IsToday        bool
	Tasks          []*models.Task
}

// MonthGrid is a month padded to whole Sunday-to-Saturday weeks
type MonthGrid struct {
	Year      int
	Month     time.Month
	Days      []Day
	TaskCount int // tasks due inside the month itself
}

// Weeks splits the grid into rows of seven days
func (g MonthGrid) Weeks() [][]Day {
	var rows [][]Day
	for i := 0; i+7 <= len(g.Days); i += 7 {
		rows = append(rows, g.Days[i:i+7])
	}
	return rows
}

// YearView holds twelve month grids
type YearView struct {
	Year   int
	Months []MonthGrid
}

// TaskCount sums the month counts
func (y YearView) TaskCount() int {
	n := 0
	for _, m := range y.Months {
		n += m.TaskCount
	}
	return n
}

// Month builds the grid for year/month. Tasks without a due date are ignored.
func Month(tasks []*models.Task, year int, month time.Month, now time.Time, loc *time.Location) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	buckets := bucket(tasks, loc)
	today := dayKey(now.In(loc))

	grid := MonthGrid{Year: year, Month: month}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dayKey(d)
		inMonth := d.Month() == month
		day := Day{
			Date:           d,
			Key:            key,
			IsCurrentMonth: inMonth,
			IsToday:        key == today,
			Tasks:          buckets[key],
		}
		if inMonth {
			grid.TaskCount += len(day.Tasks)
		}
		grid.Days = append(grid.Days, day)
	}
	return grid
}

// Week builds the seven days from the Sunday on or before cursor
func Week(tasks []*models.Task, cursor, now time.Time, loc *time.Location) []Day {
	c := cursor.In(loc)
	start := time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, loc)
	start = start.AddDate(0, 0, -int(start.Weekday()))

	buckets := bucket(tasks, loc)
	today := dayKey(now.In(loc))

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := dayKey(d)
		days = append(days, Day{
			Date:           d,
			Key:            key,
			IsCurrentMonth: true,
			IsToday:        key == today,
			Tasks:          buckets[key],
		})
	}
	return days
}

// Year builds all twelve month grids of year
func Year(tasks []*models.Task, year int, now time.Time, loc *time.Location) YearView {
	v := YearView{Year: year, Months: make([]MonthGrid, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		v.Months = append(v.Months, Month(tasks, year, m, now, loc))
	}
	return v
}

// bucket groups tasks by the calendar day of their due date in loc
func bucket(tasks []*models.Task, loc *time.Location) map[string][]*models.Task {
	out := make(map[string][]*models.Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := dayKey(t.DueDate.In(loc))
		out[key] = append(out[key], t)
	}
	return out
}

func dayKey(t time.Time) string {
	return dnd.DayKey(t)
}

// ============================================================================
// CLASSIFICATION
// ============================================================================

// Classification is the due-date state of a task
type Classification int

const (
	Normal Classification = iota
	Warning
	Overdue
)

func (c Classification) String() string {
	switch c {
	case Warning:
		return "warning"
	case Overdue:
		return "overdue"
	}
	return "normal"
}

// DaysUntilDue is ceil((due-now)/24h)
func DaysUntilDue(due, now time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(24*time.Hour)))
}

// Classify marks a task overdue, due soon, or neither. Done tasks and tasks
// without a due date are always Normal.
func Classify(t *models.Task, now time.Time, warningDays int) Classification {
	if t.DueDate == nil || t.Status == models.StatusDone {
		return Normal
	}
	if t.DueDate.Before(now) {
		return Overdue
	}
	if d := DaysUntilDue(*t.DueDate, now); d > 0 && d <= warningDays {
		return Warning
	}
	return Normal
}

// NoDueDate returns the tasks that never appear in a grid cell
func NoDueDate(tasks []*models.Task) []*models.Task {
	var out []*models.Task
	for _, t := range tasks {
		if t.DueDate == nil {
			out = append(out, t)
		}
	}
	return out
}

// WithClassification returns the tasks classified as c
func WithClassification(tasks []*models.Task, c Classification, now time.Time, warningDays int) []*models.Task {
	var out []*models.Task
	for _, t := range tasks {
		if Classify(t, now, warningDays) == c {
			out = append(out, t)
		}
	}
	return out
}

// Visible drops done tasks unless showCompleted is set
func Visible(tasks []*models.Task, showCompleted bool) []*models.Task {
	if showCompleted {
		return tasks
	}
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != models.StatusDone {
			out = append(out, t)
		}
	}
	return out
}
