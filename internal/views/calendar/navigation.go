package calendar

import (
	"fmt"
	"time"
)

// Zoom is the calendar zoom level
type Zoom string

const (
	ZoomMonth Zoom = "month"
	ZoomWeek  Zoom = "week"
	ZoomYear  Zoom = "year"
)

// ParseZoom accepts month, week or year
func ParseZoom(s string) (Zoom, error) {
	switch z := Zoom(s); z {
	case ZoomMonth, ZoomWeek, ZoomYear:
		return z, nil
	}
	return "", fmt.Errorf("invalid zoom '%s' (must be: month, week, year)", s)
}

// Navigate moves cursor one step in dir (+1 or -1) at zoom:
// a month, seven days, or a year.
func Navigate(cursor time.Time, zoom Zoom, dir int) time.Time {
	switch zoom {
	case ZoomWeek:
		return cursor.AddDate(0, 0, 7*dir)
	case ZoomYear:
		return cursor.AddDate(dir, 0, 0)
	default:
		// anchor on the 1st so Jan 31 + 1 month is February, not March
		first := time.Date(cursor.Year(), cursor.Month(), 1, cursor.Hour(), cursor.Minute(), 0, 0, cursor.Location())
		return first.AddDate(0, dir, 0)
	}
}

// Header is the title shown above the grid
func Header(cursor time.Time, zoom Zoom, loc *time.Location) string {
	c := cursor.In(loc)
	switch zoom {
	case ZoomWeek:
		days := Week(nil, c, c, loc)
		first, last := days[0].Date, days[6].Date
		if first.Year() != last.Year() {
			return fmt.Sprintf("%s - %s", first.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))
		}
		return fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
	case ZoomYear:
		return fmt.Sprintf("%d", c.Year())
	default:
		return c.Format("January 2006")
	}
}

// Navigator is the zoom/cursor state of a calendar view
type Navigator struct {
	Zoom   Zoom
	Cursor time.Time
}

// Next moves forward one step
func (n *Navigator) Next() { n.Cursor = Navigate(n.Cursor, n.Zoom, 1) }

// Prev moves back one step
func (n *Navigator) Prev() { n.Cursor = Navigate(n.Cursor, n.Zoom, -1) }

// Today moves the cursor to now
func (n *Navigator) Today(now time.Time) { n.Cursor = now }

// DrillDown switches a year view into the given month
func (n *Navigator) DrillDown(month time.Month) {
	n.Cursor = time.Date(n.Cursor.Year(), month, 1, 12, 0, 0, 0, n.Cursor.Location())
	n.Zoom = ZoomMonth
}
