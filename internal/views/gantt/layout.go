package gantt

import (
	"time"

	"github.com/thenoetrevino/dotoo/internal/config/colors"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// Rect is the horizontal extent of a rendered day column
type Rect struct {
	Left  float64
	Width float64
}

// Measure converts absolute column rectangles into offsets relative to the
// timeline container
func Measure(absolute []Rect, containerLeft float64) []Rect {
	out := make([]Rect, len(absolute))
	for i, r := range absolute {
		out[i] = Rect{Left: r.Left - containerLeft, Width: r.Width}
	}
	return out
}

// UniformColumns splits a container of the given width into n equal columns.
// Terminal renderers use it in place of a measured layout.
func UniformColumns(containerWidth float64, n int) []Rect {
	if n <= 0 {
		return nil
	}
	w := containerWidth / float64(n)
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{Left: float64(i) * w, Width: w}
	}
	return out
}

// BarStyle is the derived look of a bar
type BarStyle struct {
	Fill   string
	Border string // empty when no emphasis
}

// Style colors a bar by status and adds a border for high and critical
// priority. A nil scheme uses the default palette.
func Style(t *models.Task, scheme *colors.ColorScheme) BarStyle {
	if scheme == nil {
		scheme = colors.Default()
	}
	var s BarStyle
	switch t.Status {
	case models.StatusDone:
		s.Fill = scheme.Done
	case models.StatusDoing:
		s.Fill = scheme.Doing
	default:
		s.Fill = scheme.Todo
	}
	switch t.Priority {
	case models.PriorityCritical:
		s.Border = scheme.PriorityCritical
	case models.PriorityHigh:
		s.Border = scheme.PriorityHigh
	}
	return s
}

// Bar is a positioned task
type Bar struct {
	Task     *models.Task
	Interval Interval
	StartCol int
	EndCol   int
	Left     float64
	Width    float64
	Measured bool
	Style    BarStyle
}

// Chart holds a timeline and the bars laid over it
type Chart struct {
	Columns []Column
	Bars    []Bar
}

// Layout positions every dated task on cols. When rects is nil or does not
// match the timeline, bars get the fallback width at offset zero.
func Layout(tasks []*models.Task, cols []Column, rects []Rect, opts Options, scheme *colors.ColorScheme) Chart {
	opts = opts.withDefaults()
	measured := len(rects) == len(cols) && len(cols) > 0
	loc := timelineLocation(cols)

	chart := Chart{Columns: cols, Bars: []Bar{}}
	for _, t := range tasks {
		iv, ok := IntervalOf(t, loc)
		if !ok {
			continue
		}
		bar := Bar{
			Task:     t,
			Interval: iv,
			StartCol: ColumnIndex(cols, iv.Start),
			EndCol:   ColumnIndex(cols, iv.End),
			Width:    opts.FallbackWidth,
			Measured: measured,
			Style:    Style(t, scheme),
		}
		if measured {
			start, end := rects[bar.StartCol], rects[bar.EndCol]
			bar.Left = start.Left
			bar.Width = max(opts.MinBarWidth, end.Left+end.Width-start.Left)
		}
		chart.Bars = append(chart.Bars, bar)
	}
	return chart
}

func timelineLocation(cols []Column) *time.Location {
	if len(cols) == 0 {
		return time.Local
	}
	return cols[0].Date.Location()
}
