// Package gantt positions tasks as bars over a fixed daily timeline.
//
// Date to column mapping is pure. Column to pixel mapping takes measured
// column rectangles as input, and falls back to a fixed bar when no
// measurement is available yet.
package gantt

import (
	"math"
	"time"

	"github.com/thenoetrevino/dotoo/internal/models"
)

const day = 24 * time.Hour

// Options sizes the timeline and the fallback layout
type Options struct {
	WindowDays    int
	LeadDays      int
	FallbackWidth float64
	MinBarWidth   float64
}

// DefaultOptions returns the 28-day window starting four days before the cursor
func DefaultOptions() Options {
	return Options{WindowDays: 28, LeadDays: 4, FallbackWidth: 100, MinBarWidth: 20}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.WindowDays <= 0 {
		o.WindowDays = d.WindowDays
	}
	if o.LeadDays < 0 {
		o.LeadDays = d.LeadDays
	}
	if o.FallbackWidth <= 0 {
		o.FallbackWidth = d.FallbackWidth
	}
	if o.MinBarWidth <= 0 {
		o.MinBarWidth = d.MinBarWidth
	}
	return o
}

// Column is one day of the timeline
type Column struct {
	Date      time.Time // noon in the timeline's location
	IsWeekend bool
	IsToday   bool
}

// Timeline builds WindowDays columns, the first LeadDays before cursor
func Timeline(cursor, now time.Time, opts Options, loc *time.Location) []Column {
	opts = opts.withDefaults()
	start := noon(cursor, loc).AddDate(0, 0, -opts.LeadDays)
	today := noon(now, loc)

	cols := make([]Column, opts.WindowDays)
	for i := range cols {
		d := start.AddDate(0, 0, i)
		wd := d.Weekday()
		cols[i] = Column{
			Date:      d,
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
			IsToday:   d.Equal(today),
		}
	}
	return cols
}

// Interval is the span a bar covers
type Interval struct {
	Start time.Time
	End   time.Time
}

// Days is the bar duration rounded up to whole days
func (iv Interval) Days() int {
	return int(math.Ceil(float64(iv.End.Sub(iv.Start)) / float64(day)))
}

// IntervalOf derives a task's bar span from its raw timestamps. A task
// without createdAt starts three days before its due date. Only an end on or
// before the start is pushed to one day after it; columns absorb the rest
// through ColumnIndex. ok is false for tasks without a due date.
func IntervalOf(t *models.Task, loc *time.Location) (iv Interval, ok bool) {
	if t.DueDate == nil {
		return Interval{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	end := t.DueDate.In(loc)
	start := end.Add(-3 * day)
	if !t.CreatedAt.IsZero() {
		start = t.CreatedAt.In(loc)
	}
	if !end.After(start) {
		end = start.Add(day)
	}
	return Interval{Start: start, End: end}, true
}

// ColumnIndex returns the column nearest to d by absolute time distance.
// Dates outside the window clamp to an edge column. Ties go to the later
// column, so midnight lands on its own day. It returns -1 for an empty
// timeline.
func ColumnIndex(cols []Column, d time.Time) int {
	best, bestDist := -1, time.Duration(math.MaxInt64)
	for i, c := range cols {
		dist := d.Sub(c.Date)
		if dist < 0 {
			dist = -dist
		}
		if dist <= bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// Navigate moves the cursor a week in dir (+1 or -1)
func Navigate(cursor time.Time, dir int) time.Time {
	return cursor.AddDate(0, 0, 7*dir)
}

func noon(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc)
}
