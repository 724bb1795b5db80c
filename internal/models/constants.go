package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// STATUS
// ============================================================================

// Status is the workflow state of a task. Transitions are unrestricted.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// Rank orders statuses todo < doing < done
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 1
	case StatusDoing:
		return 2
	case StatusDone:
		return 3
	}
	return 0
}

// Label returns the column heading for the status
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusDoing:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus maps a user supplied string to a Status
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status '%s' (must be: todo, doing, done)", v)
	}
	return s, nil
}

// ============================================================================
// PRIORITY
// ============================================================================

// Priority is ordered low < medium < high < critical
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities low=1 .. critical=4
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	}
	return 0
}

// IsUrgent is true for high and critical
func (p Priority) IsUrgent() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// ParsePriority maps a user supplied string to a Priority
func ParsePriority(v string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(v)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority '%s' (must be: low, medium, high, critical)", v)
	}
	return p, nil
}

// ============================================================================
// CATEGORY
// ============================================================================

// Category classifies the kind of work a task represents
type Category string

const (
	CategoryFeature  Category = "feature"
	CategoryBug      Category = "bug"
	CategoryDocs     Category = "docs"
	CategoryRefactor Category = "refactor"
	CategoryTest     Category = "test"
	CategoryChore    Category = "chore"
)

// Categories lists every category
var Categories = []Category{
	CategoryFeature, CategoryBug, CategoryDocs,
	CategoryRefactor, CategoryTest, CategoryChore,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryFeature, CategoryBug, CategoryDocs, CategoryRefactor, CategoryTest, CategoryChore:
		return true
	}
	return false
}

// ParseCategory maps a user supplied string to a Category
func ParseCategory(v string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(v)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid category '%s' (must be: feature, bug, docs, refactor, test, chore)", v)
	}
	return c, nil
}

// ============================================================================
// VIEW TYPE
// ============================================================================

// ViewType selects how a project's tasks are rendered
type ViewType string

const (
	ViewKanban   ViewType = "kanban"
	ViewList     ViewType = "list"
	ViewCalendar ViewType = "calendar"
	ViewGantt    ViewType = "gantt"
	ViewTable    ViewType = "table"
	ViewMindmap  ViewType = "mindmap"
)

// ViewTypes lists every view type
var ViewTypes = []ViewType{ViewKanban, ViewList, ViewCalendar, ViewGantt, ViewTable, ViewMindmap}

// Valid reports whether v is one of the known view types
func (v ViewType) Valid() bool {
	switch v {
	case ViewKanban, ViewList, ViewCalendar, ViewGantt, ViewTable, ViewMindmap:
		return true
	}
	return false
}

// ParseViewType maps a user supplied string to a ViewType
func ParseViewType(v string) (ViewType, error) {
	vt := ViewType(strings.ToLower(strings.TrimSpace(v)))
	if !vt.Valid() {
		return "", fmt.Errorf("invalid view type '%s' (must be: kanban, list, calendar, gantt, table, mindmap)", v)
	}
	return vt, nil
}

// ============================================================================
// PROJECT TYPE
// ============================================================================

// ProjectType describes what a project is for
type ProjectType string

const (
	ProjectDevelopment ProjectType = "development"
	ProjectDesign      ProjectType = "design"
	ProjectMarketing   ProjectType = "marketing"
	ProjectResearch    ProjectType = "research"
	ProjectPersonal    ProjectType = "personal"
	ProjectOther       ProjectType = "other"
)

// ProjectTypes lists every project type
var ProjectTypes = []ProjectType{
	ProjectDevelopment, ProjectDesign, ProjectMarketing,
	ProjectResearch, ProjectPersonal, ProjectOther,
}

// Valid reports whether t is one of the known project types
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectDevelopment, ProjectDesign, ProjectMarketing, ProjectResearch, ProjectPersonal, ProjectOther:
		return true
	}
	return false
}

// ParseProjectType maps a user supplied string to a ProjectType
func ParseProjectType(v string) (ProjectType, error) {
	t := ProjectType(strings.ToLower(strings.TrimSpace(v)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid project type '%s' (must be: development, design, marketing, research, personal, other)", v)
	}
	return t, nil
}
