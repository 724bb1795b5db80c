package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/dnd"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func due(id string, t time.Time, status models.Status) *models.Task {
	return &models.Task{ID: id, Title: id, Status: status, DueDate: &t}
}

// ============================================================================
// GRIDS
// ============================================================================

func TestMonth_PadsToWholeWeeks(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday
	grid := Month(nil, 2025, time.March, date(2025, 3, 14), time.UTC)

	require.Len(t, grid.Days, 42)
	assert.Equal(t, date(2025, 2, 23), grid.Days[0].Date)
	assert.Equal(t, date(2025, 4, 5), grid.Days[41].Date)
	assert.False(t, grid.Days[0].IsCurrentMonth)
	assert.True(t, grid.Days[6].IsCurrentMonth)
	assert.Len(t, grid.Weeks(), 6)
}

func TestMonth_FebruaryStartingSunday(t *testing.T) {
	grid := Month(nil, 2026, time.February, date(2026, 2, 1), time.UTC)

	require.Len(t, grid.Days, 28)
	for _, d := range grid.Days {
		assert.True(t, d.IsCurrentMonth)
	}
}

func TestMonth_BucketsByDueDay(t *testing.T) {
	tasks := []*models.Task{
		due("a", time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC), models.StatusTodo),
		due("b", time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC), models.StatusDone),
		due("c", time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC), models.StatusTodo),
		{ID: "undated", Status: models.StatusTodo},
	}
	grid := Month(tasks, 2025, time.March, date(2025, 3, 14), time.UTC)

	var march14, feb24 Day
	for _, d := range grid.Days {
		switch d.Key {
		case "day-2025-03-14":
			march14 = d
		case "day-2025-02-24":
			feb24 = d
		}
	}
	assert.True(t, march14.IsToday)
	assert.Len(t, march14.Tasks, 2)
	assert.Len(t, feb24.Tasks, 1)
	assert.Equal(t, 2, grid.TaskCount, "padding days are not counted")
}

func TestMonth_UsesLocationForDayBoundary(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 02:00 UTC on the 15th is still the 14th at UTC-5
	tasks := []*models.Task{due("a", time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC), models.StatusTodo)}

	grid := Month(tasks, 2025, time.March, date(2025, 3, 1), loc)

	for _, d := range grid.Days {
		if d.Key == "day-2025-03-14" {
			assert.Len(t, d.Tasks, 1)
			return
		}
	}
	t.Fatal("day-2025-03-14 not in grid")
}

func TestWeek_AnchorsOnSunday(t *testing.T) {
	days := Week(nil, time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC), date(2025, 3, 12), time.UTC)

	require.Len(t, days, 7)
	assert.Equal(t, time.Sunday, days[0].Date.Weekday())
	assert.Equal(t, date(2025, 3, 9), days[0].Date)
	assert.Equal(t, date(2025, 3, 15), days[6].Date)
	assert.True(t, days[3].IsToday)
}

func TestYear_CountsPerMonth(t *testing.T) {
	tasks := []*models.Task{
		due("a", date(2025, 1, 5), models.StatusTodo),
		due("b", date(2025, 1, 6), models.StatusTodo),
		due("c", date(2025, 12, 31), models.StatusTodo),
		due("d", date(2024, 12, 31), models.StatusTodo),
	}
	v := Year(tasks, 2025, date(2025, 6, 1), time.UTC)

	require.Len(t, v.Months, 12)
	assert.Equal(t, 2, v.Months[0].TaskCount)
	assert.Equal(t, 1, v.Months[11].TaskCount)
	assert.Equal(t, 3, v.TaskCount())
}

// ============================================================================
// CLASSIFICATION
// ============================================================================

func TestClassify(t *testing.T) {
	now := date(2025, 3, 14)
	tests := []struct {
		name string
		task *models.Task
		want Classification
	}{
		{"yesterday", due("a", now.AddDate(0, 0, -1), models.StatusTodo), Overdue},
		{"today", due("a", now, models.StatusTodo), Normal},
		{"in two days", due("a", now.AddDate(0, 0, 2), models.StatusTodo), Warning},
		{"in three days", due("a", now.AddDate(0, 0, 3), models.StatusDoing), Warning},
		{"in four days", due("a", now.AddDate(0, 0, 4), models.StatusTodo), Normal},
		{"in ten days", due("a", now.AddDate(0, 0, 10), models.StatusTodo), Normal},
		{"done and late", due("a", now.AddDate(0, 0, -5), models.StatusDone), Normal},
		{"no due date", &models.Task{ID: "a", Status: models.StatusTodo}, Normal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.task, now, DefaultWarningDays))
		})
	}
}

func TestDaysUntilDue_RoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntilDue(now.Add(time.Hour), now))
	assert.Equal(t, 2, DaysUntilDue(now.Add(25*time.Hour), now))
	assert.Equal(t, 0, DaysUntilDue(now, now))
}

func TestNoDueDateAndVisible(t *testing.T) {
	tasks := []*models.Task{
		due("a", date(2025, 3, 1), models.StatusDone),
		{ID: "b", Status: models.StatusTodo},
	}
	assert.Equal(t, "b", NoDueDate(tasks)[0].ID)
	assert.Len(t, Visible(tasks, false), 1)
	assert.Len(t, Visible(tasks, true), 2)
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigate(t *testing.T) {
	cursor := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

	next := Navigate(cursor, ZoomMonth, 1)
	assert.Equal(t, time.February, next.Month())

	assert.Equal(t, time.Date(2025, 2, 7, 12, 0, 0, 0, time.UTC), Navigate(cursor, ZoomWeek, 1))
	assert.Equal(t, 2024, Navigate(cursor, ZoomYear, -1).Year())
	assert.Equal(t, time.December, Navigate(cursor, ZoomMonth, -1).Month())
}

func TestNavigator(t *testing.T) {
	n := &Navigator{Zoom: ZoomYear, Cursor: date(2025, 3, 14)}
	n.Next()
	assert.Equal(t, 2026, n.Cursor.Year())

	n.DrillDown(time.July)
	assert.Equal(t, ZoomMonth, n.Zoom)
	assert.Equal(t, time.July, n.Cursor.Month())

	n.Prev()
	assert.Equal(t, time.June, n.Cursor.Month())

	n.Today(date(2020, 1, 1))
	assert.Equal(t, 2020, n.Cursor.Year())
}

func TestHeader(t *testing.T) {
	c := date(2025, 3, 12)
	assert.Equal(t, "March 2025", Header(c, ZoomMonth, time.UTC))
	assert.Equal(t, "Mar 9 - Mar 15, 2025", Header(c, ZoomWeek, time.UTC))
	assert.Equal(t, "2025", Header(c, ZoomYear, time.UTC))
	assert.Equal(t, "Dec 28, 2025 - Jan 3, 2026", Header(date(2025, 12, 31), ZoomWeek, time.UTC))
}

func TestParseZoom(t *testing.T) {
	z, err := ParseZoom("week")
	require.NoError(t, err)
	assert.Equal(t, ZoomWeek, z)

	_, err = ParseZoom("decade")
	assert.Error(t, err)
}

// ============================================================================
// DROP
// ============================================================================

type recordingUpdater struct {
	reqs []taskservice.UpdateTaskRequest
	err  error
}

func (r *recordingUpdater) UpdateTask(_ context.Context, req taskservice.UpdateTaskRequest) (*models.Task, error) {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return nil, r.err
	}
	return &models.Task{ID: req.TaskID, DueDate: req.DueDate}, nil
}

func TestRescheduler_DropOnDaySetsNoon(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	up := &recordingUpdater{}
	r := NewRescheduler(up, loc)

	r.DragStart("t1")
	assert.Equal(t, "t1", r.Lifted())
	r.DragOver("day-2025-03-14")

	out, err := r.Drop(context.Background(), "t1", "day-2025-03-14")
	require.NoError(t, err)

	assert.True(t, out.Applied)
	assert.Equal(t, dnd.TargetDay, out.Target.Kind)
	require.Len(t, up.reqs, 1)
	want := time.Date(2025, 3, 14, 12, 0, 0, 0, loc)
	assert.True(t, want.Equal(*up.reqs[0].DueDate))
	assert.Empty(t, r.Lifted())
}

func TestRescheduler_IgnoresOtherTargets(t *testing.T) {
	up := &recordingUpdater{}
	r := NewRescheduler(up, time.UTC)

	for _, target := range []string{"", "doing", "some-task"} {
		out, err := r.Drop(context.Background(), "t1", target)
		require.NoError(t, err)
		assert.False(t, out.Applied)
	}
	assert.Empty(t, up.reqs)
}

func TestRescheduler_PropagatesStoreError(t *testing.T) {
	up := &recordingUpdater{err: errors.New("boom")}
	r := NewRescheduler(up, time.UTC)

	out, err := r.Drop(context.Background(), "t1", "day-2025-03-14")
	assert.Error(t, err)
	assert.False(t, out.Applied)
}
