package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/dotoo/internal/models"
)

var filterNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func ids(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func filterFixture() []*models.Task {
	past := filterNow.Add(-48 * time.Hour)
	future := filterNow.Add(48 * time.Hour)
	return []*models.Task{
		{ID: "1", ProjectID: "p1", Title: "Login page", Category: models.CategoryFeature,
			Priority: models.PriorityHigh, Status: models.StatusTodo, Tags: []string{"ui", "auth"},
			DueDate: &past, BranchName: "feature/login-page"},
		{ID: "2", ProjectID: "p1", Title: "Fix crash", Description: "Null pointer in AUTH flow",
			Category: models.CategoryBug, Priority: models.PriorityCritical, Status: models.StatusDoing,
			Code: "panic(nil)", AssignedTo: "sam"},
		{ID: "3", ProjectID: "p1", Title: "Write docs", Category: models.CategoryDocs,
			Priority: models.PriorityLow, Status: models.StatusDone, DueDate: &past, Tags: []string{"docs"}},
		{ID: "4", ProjectID: "p2", Title: "Other project login", Category: models.CategoryFeature,
			Priority: models.PriorityHigh, Status: models.StatusTodo},
		{ID: "5", ProjectID: "p1", Title: "Refactor store", Category: models.CategoryRefactor,
			Priority: models.PriorityMedium, Status: models.StatusTodo, DueDate: &future},
	}
}

func TestFilter_EmptyFiltersKeepProjectScopeAndOrder(t *testing.T) {
	got := Filter(filterFixture(), "p1", models.SearchFilters{}, filterNow)
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(got))
}

func TestFilter_NoActiveProjectMatchesNothing(t *testing.T) {
	tasks := append(filterFixture(), &models.Task{ID: "legacy"})
	assert.Empty(t, Filter(tasks, "", models.SearchFilters{}, filterNow))
	assert.Empty(t, Filter(tasks, "", models.SearchFilters{ProjectID: ptr("p1")}, filterNow))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name    string
		filters models.SearchFilters
		want    []string
	}{
		{"query title", models.SearchFilters{Query: "LOGIN"}, []string{"1"}},
		{"query description", models.SearchFilters{Query: "auth"}, []string{"1", "2"}},
		{"query branch", models.SearchFilters{Query: "feature/login"}, []string{"1"}},
		{"query tag", models.SearchFilters{Query: "docs"}, []string{"3"}},
		{"category", models.SearchFilters{Category: ptr(models.CategoryBug)}, []string{"2"}},
		{"priority", models.SearchFilters{Priority: ptr(models.PriorityHigh)}, []string{"1"}},
		{"status", models.SearchFilters{Status: ptr(models.StatusTodo)}, []string{"1", "5"}},
		{"tags any-of", models.SearchFilters{Tags: []string{"auth", "docs"}}, []string{"1", "3"}},
		{"has code", models.SearchFilters{HasCode: ptr(true)}, []string{"2"}},
		{"no code", models.SearchFilters{HasCode: ptr(false)}, []string{"1", "3", "5"}},
		{"has due date", models.SearchFilters{HasDueDate: ptr(true)}, []string{"1", "3", "5"}},
		{"no due date", models.SearchFilters{HasDueDate: ptr(false)}, []string{"2"}},
		{"overdue", models.SearchFilters{IsOverdue: ptr(true)}, []string{"1"}},
		{"not overdue", models.SearchFilters{IsOverdue: ptr(false)}, []string{"2", "3", "5"}},
		{"assigned", models.SearchFilters{AssignedTo: ptr("sam")}, []string{"2"}},
		{"project override", models.SearchFilters{ProjectID: ptr("p2")}, []string{}},
		{"combined", models.SearchFilters{Status: ptr(models.StatusTodo), HasDueDate: ptr(true), Query: "store"}, []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(filterFixture(), "p1", tt.filters, filterNow)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// Every returned task satisfies each predicate individually, and nothing
// that satisfies all of them is dropped.
func TestFilter_IsIntersectionOfPredicates(t *testing.T) {
	tasks := filterFixture()
	single := []models.SearchFilters{
		{Status: ptr(models.StatusTodo)},
		{Priority: ptr(models.PriorityHigh)},
	}
	combined := models.SearchFilters{Status: ptr(models.StatusTodo), Priority: ptr(models.PriorityHigh)}

	want := map[string]int{}
	for _, f := range single {
		for _, task := range Filter(tasks, "p1", f, filterNow) {
			want[task.ID]++
		}
	}
	var expected []string
	for _, task := range tasks {
		if want[task.ID] == len(single) {
			expected = append(expected, task.ID)
		}
	}

	assert.Equal(t, expected, ids(Filter(tasks, "p1", combined, filterNow)))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tasks := filterFixture()
	before := ids(tasks)
	_ = Filter(tasks, "p1", models.SearchFilters{Status: ptr(models.StatusDone)}, filterNow)
	assert.Equal(t, before, ids(tasks))
}
