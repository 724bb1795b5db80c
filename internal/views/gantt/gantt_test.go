package gantt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func dated(created, due time.Time) *models.Task {
	return &models.Task{ID: "t", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedAt: created, DueDate: &due}
}

// ============================================================================
// TIMELINE
// ============================================================================

func TestTimeline_WindowAndFlags(t *testing.T) {
	// 2025-03-12 is a Wednesday
	cols := Timeline(at(2025, 3, 12, 8), at(2025, 3, 12, 20), DefaultOptions(), time.UTC)

	require.Len(t, cols, 28)
	assert.Equal(t, at(2025, 3, 8, 12), cols[0].Date)
	assert.True(t, cols[0].IsWeekend)
	assert.True(t, cols[1].IsWeekend)
	assert.False(t, cols[2].IsWeekend)
	assert.True(t, cols[4].IsToday)

	today := 0
	for _, c := range cols {
		if c.IsToday {
			today++
		}
	}
	assert.Equal(t, 1, today)
}

func TestIntervalOf(t *testing.T) {
	t.Run("created to due", func(t *testing.T) {
		iv, ok := IntervalOf(dated(at(2025, 3, 1, 8), at(2025, 3, 5, 23)), time.UTC)
		require.True(t, ok)
		assert.Equal(t, at(2025, 3, 1, 8), iv.Start)
		assert.Equal(t, at(2025, 3, 5, 23), iv.End)
		assert.Equal(t, 5, iv.Days())
	})

	t.Run("missing createdAt starts three days early", func(t *testing.T) {
		iv, ok := IntervalOf(dated(time.Time{}, at(2025, 3, 5, 9)), time.UTC)
		require.True(t, ok)
		assert.Equal(t, at(2025, 3, 2, 9), iv.Start)
		assert.Equal(t, 3, iv.Days())
	})

	t.Run("due before created clamps to one day", func(t *testing.T) {
		iv, ok := IntervalOf(dated(at(2025, 3, 10, 9), at(2025, 3, 1, 9)), time.UTC)
		require.True(t, ok)
		assert.Equal(t, iv.Start.Add(24*time.Hour), iv.End)
		assert.Equal(t, 1, iv.Days())
	})

	t.Run("same day keeps the due time", func(t *testing.T) {
		due := at(2025, 3, 10, 18)
		iv, ok := IntervalOf(dated(at(2025, 3, 10, 9), due), time.UTC)
		require.True(t, ok)
		assert.Equal(t, due, iv.End)
		assert.Equal(t, 1, iv.Days())

		cols := Timeline(at(2025, 3, 10, 12), at(2025, 3, 10, 12), DefaultOptions(), time.UTC)
		assert.Equal(t, 4, ColumnIndex(cols, iv.Start))
		assert.Equal(t, 4, ColumnIndex(cols, iv.End))
	})

	t.Run("converts to the timeline location", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		iv, ok := IntervalOf(dated(at(2025, 3, 10, 3), at(2025, 3, 12, 3)), est)
		require.True(t, ok)
		assert.Equal(t, est, iv.Start.Location())
		assert.Equal(t, 9, iv.Start.Day())
	})

	t.Run("no due date", func(t *testing.T) {
		_, ok := IntervalOf(&models.Task{CreatedAt: at(2025, 3, 1, 0)}, time.UTC)
		assert.False(t, ok)
	})
}

func TestColumnIndex_NearestAndClamped(t *testing.T) {
	cols := Timeline(at(2025, 3, 12, 12), at(2025, 3, 12, 12), DefaultOptions(), time.UTC)

	assert.Equal(t, 4, ColumnIndex(cols, at(2025, 3, 12, 12)))
	assert.Equal(t, 4, ColumnIndex(cols, at(2025, 3, 12, 23)))
	assert.Equal(t, 4, ColumnIndex(cols, at(2025, 3, 12, 0)), "midnight belongs to its own day")
	assert.Equal(t, 0, ColumnIndex(cols, at(2024, 1, 1, 12)))
	assert.Equal(t, 27, ColumnIndex(cols, at(2026, 1, 1, 12)))
	assert.Equal(t, -1, ColumnIndex(nil, at(2025, 3, 12, 12)))
}

func TestNavigate(t *testing.T) {
	c := at(2025, 3, 12, 12)
	assert.Equal(t, at(2025, 3, 19, 12), Navigate(c, 1))
	assert.Equal(t, at(2025, 3, 5, 12), Navigate(c, -1))
}

// ============================================================================
// LAYOUT
// ============================================================================

func TestLayout_Measured(t *testing.T) {
	now := at(2025, 3, 12, 12)
	cols := Timeline(now, now, DefaultOptions(), time.UTC)
	rects := UniformColumns(280, len(cols))

	task := dated(at(2025, 3, 12, 9), at(2025, 3, 14, 9))
	chart := Layout([]*models.Task{task, {ID: "undated"}}, cols, rects, DefaultOptions(), nil)

	require.Len(t, chart.Bars, 1)
	bar := chart.Bars[0]
	assert.True(t, bar.Measured)
	assert.Equal(t, 4, bar.StartCol)
	assert.Equal(t, 6, bar.EndCol)
	assert.InDelta(t, 40.0, bar.Left, 0.001)
	assert.InDelta(t, 30.0, bar.Width, 0.001)
}

func TestLayout_MinimumWidth(t *testing.T) {
	now := at(2025, 3, 12, 12)
	cols := Timeline(now, now, DefaultOptions(), time.UTC)
	rects := UniformColumns(28, len(cols))

	chart := Layout([]*models.Task{dated(now, now)}, cols, rects, DefaultOptions(), nil)

	assert.InDelta(t, 20.0, chart.Bars[0].Width, 0.001)
}

func TestLayout_FallbackBeforeMeasurement(t *testing.T) {
	now := at(2025, 3, 12, 12)
	cols := Timeline(now, now, DefaultOptions(), time.UTC)

	chart := Layout([]*models.Task{dated(now, now.AddDate(0, 0, 5))}, cols, nil, DefaultOptions(), nil)

	bar := chart.Bars[0]
	assert.False(t, bar.Measured)
	assert.Zero(t, bar.Left)
	assert.Equal(t, 100.0, bar.Width)
}

func TestMeasure_SubtractsContainerOffset(t *testing.T) {
	got := Measure([]Rect{{Left: 120, Width: 10}, {Left: 130, Width: 10}}, 100)
	assert.Equal(t, []Rect{{Left: 20, Width: 10}, {Left: 30, Width: 10}}, got)
}

func TestStyle(t *testing.T) {
	tests := []struct {
		status   models.Status
		priority models.Priority
		fill     string
		border   string
	}{
		{models.StatusDone, models.PriorityLow, "#10B981", ""},
		{models.StatusDoing, models.PriorityHigh, "#3B82F6", "#F97316"},
		{models.StatusTodo, models.PriorityCritical, "#6B7280", "#EF4444"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := Style(&models.Task{Status: tt.status, Priority: tt.priority}, nil)
			assert.Equal(t, tt.fill, s.Fill)
			assert.Equal(t, tt.border, s.Border)
		})
	}
}

// ============================================================================
// DROPDOWNS
// ============================================================================

type recordingEditor struct {
	statuses   map[string]models.Status
	priorities map[string]models.Priority
}

func newRecordingEditor() *recordingEditor {
	return &recordingEditor{statuses: map[string]models.Status{}, priorities: map[string]models.Priority{}}
}

func (r *recordingEditor) UpdateTaskStatus(_ context.Context, id string, status models.Status) error {
	r.statuses[id] = status
	return nil
}

func (r *recordingEditor) UpdateTask(_ context.Context, req taskservice.UpdateTaskRequest) (*models.Task, error) {
	r.priorities[req.TaskID] = *req.Priority
	return &models.Task{ID: req.TaskID}, nil
}

func TestDropdowns_MutuallyExclusive(t *testing.T) {
	d := NewDropdowns(newRecordingEditor())

	d.Toggle("a", DropdownStatus)
	assert.True(t, d.IsOpen("a", DropdownStatus))

	d.Toggle("a", DropdownPriority)
	assert.False(t, d.IsOpen("a", DropdownStatus))
	assert.True(t, d.IsOpen("a", DropdownPriority))

	d.Toggle("b", DropdownStatus)
	assert.False(t, d.IsOpen("a", DropdownPriority))

	d.Toggle("b", DropdownStatus)
	_, kind := d.Open()
	assert.Equal(t, DropdownNone, kind)
}

func TestDropdowns_SelectAppliesAndCloses(t *testing.T) {
	ed := newRecordingEditor()
	d := NewDropdowns(ed)
	ctx := context.Background()

	d.Toggle("a", DropdownStatus)
	require.NoError(t, d.SelectStatus(ctx, models.StatusDone))
	assert.Equal(t, models.StatusDone, ed.statuses["a"])
	assert.False(t, d.IsOpen("a", DropdownStatus))

	d.Toggle("a", DropdownPriority)
	require.NoError(t, d.SelectPriority(ctx, models.PriorityCritical))
	assert.Equal(t, models.PriorityCritical, ed.priorities["a"])

	// nothing open
	require.NoError(t, d.SelectStatus(ctx, models.StatusTodo))
	assert.Equal(t, models.StatusDone, ed.statuses["a"])
}

func TestDropdowns_OutsideClickCloses(t *testing.T) {
	d := NewDropdowns(newRecordingEditor())
	d.Toggle("a", DropdownPriority)
	d.Close()
	id, kind := d.Open()
	assert.Empty(t, id)
	assert.Equal(t, DropdownNone, kind)
}
