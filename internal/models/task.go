package models

import (
	"time"
)

// Task is a single unit of work inside a project
type Task struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Code           string     `json:"code,omitempty"`
	Language       string     `json:"language,omitempty"`
	Category       Category   `json:"category"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	BranchName     string     `json:"branchName,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty"`
	ActualHours    *float64   `json:"actualHours,omitempty"`
	Dependencies   []string   `json:"dependencies,omitempty"`
	ParentTaskID   string     `json:"parentTaskId,omitempty"`
	Order          *int       `json:"order,omitempty"`
}

// Clone returns a deep copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if t.DueDate != nil {
		d := *t.DueDate
		cp.DueDate = &d
	}
	if t.Tags != nil {
		cp.Tags = append([]string(nil), t.Tags...)
	}
	if t.Dependencies != nil {
		cp.Dependencies = append([]string(nil), t.Dependencies...)
	}
	if t.EstimatedHours != nil {
		v := *t.EstimatedHours
		cp.EstimatedHours = &v
	}
	if t.ActualHours != nil {
		v := *t.ActualHours
		cp.ActualHours = &v
	}
	if t.Order != nil {
		v := *t.Order
		cp.Order = &v
	}
	return &cp
}

// HasCode reports whether the task carries a non-empty snippet
func (t *Task) HasCode() bool {
	return t.Code != ""
}

// IsOverdue is true when the due date has passed and the task is not done
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}

// CloneTasks deep copies a slice of tasks
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// TaskStats is the aggregate returned by the task store
type TaskStats struct {
	Total        int `json:"total"`
	Todo         int `json:"todo"`
	Doing        int `json:"doing"`
	Done         int `json:"done"`
	HighPriority int `json:"highPriority"`
	Overdue      int `json:"overdue"`
}

// ComputeStats counts tasks per status, urgent priority and overdue
func ComputeStats(tasks []*Task, now time.Time) TaskStats {
	var s TaskStats
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case StatusTodo:
			s.Todo++
		case StatusDoing:
			s.Doing++
		case StatusDone:
			s.Done++
		}
		if t.Priority.IsUrgent() {
			s.HighPriority++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
	}
	return s
}

// GetID lets output helpers print just the id
func (t *Task) GetID() string { return t.ID }
