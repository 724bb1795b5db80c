// Package list sorts and groups tasks for the list view
package list

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// SortField is a sortable column
type SortField string

const (
	SortTitle     SortField = "title"
	SortPriority  SortField = "priority"
	SortStatus    SortField = "status"
	SortDueDate   SortField = "dueDate"
	SortCreatedAt SortField = "createdAt"
	SortCategory  SortField = "category"
)

// SortFields lists the sortable columns in display order
var SortFields = []SortField{SortTitle, SortPriority, SortStatus, SortDueDate, SortCreatedAt, SortCategory}

// GroupField is a grouping key
type GroupField string

const (
	GroupNone       GroupField = ""
	GroupCategory   GroupField = "category"
	GroupPriority   GroupField = "priority"
	GroupStatus     GroupField = "status"
	GroupAssignedTo GroupField = "assignedTo"
)

// AllTasks is the heading of the single group when grouping is off
const AllTasks = "All Tasks"

// Config is the list view state. The zero value is not the default; use
// DefaultConfig.
type Config struct {
	SortBy        SortField
	Descending    bool
	GroupBy       GroupField
	ShowCompleted bool
}

// DefaultConfig sorts newest first, ungrouped, completed tasks shown
func DefaultConfig() Config {
	return Config{SortBy: SortCreatedAt, Descending: true, ShowCompleted: true}
}

// ToggleSort sorts by field ascending, or flips to descending when field is
// already sorted ascending
func (c *Config) ToggleSort(field SortField) {
	if c.SortBy == field && !c.Descending {
		c.Descending = true
		return
	}
	c.SortBy, c.Descending = field, false
}

// ToggleGroup groups by field, or turns grouping off when already grouped by it
func (c *Config) ToggleGroup(field GroupField) {
	if c.GroupBy == field {
		c.GroupBy = GroupNone
		return
	}
	c.GroupBy = field
}

// ParseSortField accepts any SortFields entry
func ParseSortField(s string) (SortField, error) {
	if f := SortField(s); slices.Contains(SortFields, f) {
		return f, nil
	}
	return "", fmt.Errorf("invalid sort field '%s'", s)
}

// ParseGroupField accepts category, priority, status, assignedTo or ""
func ParseGroupField(s string) (GroupField, error) {
	switch f := GroupField(s); f {
	case GroupNone, GroupCategory, GroupPriority, GroupStatus, GroupAssignedTo:
		return f, nil
	}
	return "", fmt.Errorf("invalid group field '%s'", s)
}

// Group is one heading and its tasks
type Group struct {
	Name  string
	Tasks []*models.Task
}

// Apply filters completed tasks, sorts, and groups. Groups appear in the
// order their first task appears after sorting.
func Apply(tasks []*models.Task, c Config) []Group {
	visible := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.ShowCompleted || t.Status != models.StatusDone {
			visible = append(visible, t)
		}
	}
	Sort(visible, c.SortBy, c.Descending)
	return GroupTasks(visible, c.GroupBy)
}

// Sort orders tasks in place. Equal keys keep their relative order. Tasks
// without a due date sort before dated ones ascending.
func Sort(tasks []*models.Task, field SortField, descending bool) {
	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		c := compare(a, b, field)
		if descending {
			return -c
		}
		return c
	})
}

func compare(a, b *models.Task, field SortField) int {
	switch field {
	case SortPriority:
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	case SortStatus:
		return cmp.Compare(a.Status.Rank(), b.Status.Rank())
	case SortDueDate:
		return cmp.Compare(dueUnix(a), dueUnix(b))
	case SortCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortCategory:
		return cmp.Compare(a.Category, b.Category)
	default:
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
}

func dueUnix(t *models.Task) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.UnixMilli()
}

// GroupTasks splits tasks by field. With GroupNone everything lands in a
// single AllTasks group.
func GroupTasks(tasks []*models.Task, field GroupField) []Group {
	if field == GroupNone {
		return []Group{{Name: AllTasks, Tasks: tasks}}
	}
	var groups []Group
	index := map[string]int{}
	for _, t := range tasks {
		name := groupName(t, field)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

func groupName(t *models.Task, field GroupField) string {
	switch field {
	case GroupCategory:
		return capitalize(string(t.Category))
	case GroupPriority:
		return capitalize(string(t.Priority))
	case GroupStatus:
		return t.Status.Label()
	case GroupAssignedTo:
		if t.AssignedTo == "" {
			return "Unassigned"
		}
		return t.AssignedTo
	}
	return AllTasks
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
