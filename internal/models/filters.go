package models

import (
	"errors"
	"fmt"
)

// Filter field names, as accepted by Without
const (
	FilterQuery      = "query"
	FilterCategory   = "category"
	FilterPriority   = "priority"
	FilterStatus     = "status"
	FilterTags       = "tags"
	FilterHasCode    = "has-code"
	FilterHasDueDate = "has-due"
	FilterIsOverdue  = "overdue"
	FilterProject    = "project"
	FilterAssigned   = "assigned"
)

// FilterFields lists every filter field name in display order
var FilterFields = []string{
	FilterQuery, FilterCategory, FilterPriority, FilterStatus, FilterTags,
	FilterHasCode, FilterHasDueDate, FilterIsOverdue, FilterProject, FilterAssigned,
}

// ErrUnknownFilterField is returned by Without for a name outside FilterFields
var ErrUnknownFilterField = errors.New("unknown filter field")

// SearchFilters is the active filter set. Unset fields impose no constraint;
// all set fields are combined with AND.
type SearchFilters struct {
	Query      string    `json:"query"`
	Category   *Category `json:"category,omitempty"`
	Priority   *Priority `json:"priority,omitempty"`
	Status     *Status   `json:"status,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	HasCode    *bool     `json:"hasCode,omitempty"`
	HasDueDate *bool     `json:"hasDueDate,omitempty"`
	IsOverdue  *bool     `json:"isOverdue,omitempty"`
	ProjectID  *string   `json:"projectId,omitempty"`
	AssignedTo *string   `json:"assignedTo,omitempty"`
}

// Merge overlays the set fields of patch onto f. A non-nil Tags slice
// replaces the existing tags, even when empty.
func (f SearchFilters) Merge(patch SearchFilters) SearchFilters {
	out := f
	if patch.Query != "" {
		out.Query = patch.Query
	}
	if patch.Category != nil {
		out.Category = patch.Category
	}
	if patch.Priority != nil {
		out.Priority = patch.Priority
	}
	if patch.Status != nil {
		out.Status = patch.Status
	}
	if patch.Tags != nil {
		out.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.HasCode != nil {
		out.HasCode = patch.HasCode
	}
	if patch.HasDueDate != nil {
		out.HasDueDate = patch.HasDueDate
	}
	if patch.IsOverdue != nil {
		out.IsOverdue = patch.IsOverdue
	}
	if patch.ProjectID != nil {
		out.ProjectID = patch.ProjectID
	}
	if patch.AssignedTo != nil {
		out.AssignedTo = patch.AssignedTo
	}
	return out
}

// Without returns f with the named predicates reset to unconstrained. Merge
// cannot express this since an unset patch field means "keep".
func (f SearchFilters) Without(fields ...string) (SearchFilters, error) {
	out := f
	for _, name := range fields {
		switch name {
		case FilterQuery:
			out.Query = ""
		case FilterCategory:
			out.Category = nil
		case FilterPriority:
			out.Priority = nil
		case FilterStatus:
			out.Status = nil
		case FilterTags:
			out.Tags = nil
		case FilterHasCode:
			out.HasCode = nil
		case FilterHasDueDate:
			out.HasDueDate = nil
		case FilterIsOverdue:
			out.IsOverdue = nil
		case FilterProject:
			out.ProjectID = nil
		case FilterAssigned:
			out.AssignedTo = nil
		default:
			return f, fmt.Errorf("%w: %s", ErrUnknownFilterField, name)
		}
	}
	return out, nil
}

// IsEmpty reports whether no predicate is set
func (f SearchFilters) IsEmpty() bool {
	return f.Query == "" && f.Category == nil && f.Priority == nil && f.Status == nil &&
		len(f.Tags) == 0 && f.HasCode == nil && f.HasDueDate == nil && f.IsOverdue == nil &&
		f.ProjectID == nil && f.AssignedTo == nil
}
