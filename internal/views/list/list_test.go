package list

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/models"
)

func fixture() []*models.Task {
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return []*models.Task{
		{ID: "a", Title: "beta", Priority: models.PriorityHigh, Status: models.StatusDone, Category: models.CategoryBug,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), DueDate: &d1, AssignedTo: "sam"},
		{ID: "b", Title: "Alpha", Priority: models.PriorityLow, Status: models.StatusDoing, Category: models.CategoryFeature,
			CreatedAt: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Title: "gamma", Priority: models.PriorityCritical, Status: models.StatusTodo, Category: models.CategoryDocs,
			CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), DueDate: &d2},
	}
}

func order(tasks []*models.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		field SortField
		desc  bool
		want  []string
	}{
		{SortTitle, false, []string{"b", "a", "c"}},
		{SortPriority, true, []string{"c", "a", "b"}},
		{SortStatus, false, []string{"c", "b", "a"}},
		{SortDueDate, false, []string{"b", "c", "a"}},
		{SortCreatedAt, true, []string{"b", "c", "a"}},
		{SortCategory, false, []string{"a", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			tasks := fixture()
			Sort(tasks, tt.field, tt.desc)
			assert.Equal(t, tt.want, order(tasks))
		})
	}
}

func TestGroupTasks(t *testing.T) {
	tasks := fixture()

	byStatus := GroupTasks(tasks, GroupStatus)
	require.Len(t, byStatus, 3)
	assert.Equal(t, "Done", byStatus[0].Name)
	assert.Equal(t, "In Progress", byStatus[1].Name)
	assert.Equal(t, "To Do", byStatus[2].Name)

	byAssignee := GroupTasks(tasks, GroupAssignedTo)
	require.Len(t, byAssignee, 2)
	assert.Equal(t, "sam", byAssignee[0].Name)
	assert.Equal(t, "Unassigned", byAssignee[1].Name)
	assert.Len(t, byAssignee[1].Tasks, 2)

	assert.Equal(t, "Bug", GroupTasks(tasks, GroupCategory)[0].Name)
	assert.Equal(t, "High", GroupTasks(tasks, GroupPriority)[0].Name)

	none := GroupTasks(tasks, GroupNone)
	require.Len(t, none, 1)
	assert.Equal(t, AllTasks, none[0].Name)
}

func TestApply_HidesCompleted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowCompleted = false

	groups := Apply(fixture(), cfg)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"b", "c"}, order(groups[0].Tasks))
}

func TestConfigToggles(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ToggleSort(SortTitle)
	assert.Equal(t, SortTitle, cfg.SortBy)
	assert.False(t, cfg.Descending)
	cfg.ToggleSort(SortTitle)
	assert.True(t, cfg.Descending)
	cfg.ToggleSort(SortTitle)
	assert.False(t, cfg.Descending)

	cfg.ToggleGroup(GroupStatus)
	assert.Equal(t, GroupStatus, cfg.GroupBy)
	cfg.ToggleGroup(GroupStatus)
	assert.Equal(t, GroupNone, cfg.GroupBy)
}

func TestParse(t *testing.T) {
	f, err := ParseSortField("dueDate")
	require.NoError(t, err)
	assert.Equal(t, SortDueDate, f)
	_, err = ParseSortField("size")
	assert.Error(t, err)

	g, err := ParseGroupField("assignedTo")
	require.NoError(t, err)
	assert.Equal(t, GroupAssignedTo, g)
	_, err = ParseGroupField("color")
	assert.Error(t, err)
}
