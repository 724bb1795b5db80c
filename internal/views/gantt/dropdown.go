package gantt

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// DropdownKind names the inline editor of a row
type DropdownKind int

const (
	DropdownNone DropdownKind = iota
	DropdownStatus
	DropdownPriority
)

// taskEditor is the slice of the task service the row editors need
type taskEditor interface {
	UpdateTaskStatus(ctx context.Context, id string, status models.Status) error
	UpdateTask(ctx context.Context, req taskservice.UpdateTaskRequest) (*models.Task, error)
}

// Dropdowns tracks which inline editor is open. At most one is open at a
// time across all rows.
type Dropdowns struct {
	tasks  taskEditor
	taskID string
	kind   DropdownKind
}

// NewDropdowns creates closed dropdown state writing through tasks
func NewDropdowns(tasks taskEditor) *Dropdowns {
	return &Dropdowns{tasks: tasks}
}

// Toggle opens kind on the task's row, closing anything else. Toggling the
// open dropdown closes it.
func (d *Dropdowns) Toggle(taskID string, kind DropdownKind) {
	if d.IsOpen(taskID, kind) {
		d.Close()
		return
	}
	d.taskID, d.kind = taskID, kind
}

// Close closes any open dropdown, e.g. on an outside click
func (d *Dropdowns) Close() {
	d.taskID, d.kind = "", DropdownNone
}

// IsOpen reports whether kind is open on the task's row
func (d *Dropdowns) IsOpen(taskID string, kind DropdownKind) bool {
	return d.kind != DropdownNone && d.taskID == taskID && d.kind == kind
}

// Open returns the open row and kind
func (d *Dropdowns) Open() (string, DropdownKind) {
	return d.taskID, d.kind
}

// SelectStatus applies the status immediately and closes the dropdown
func (d *Dropdowns) SelectStatus(ctx context.Context, status models.Status) error {
	if d.kind != DropdownStatus {
		return nil
	}
	id := d.taskID
	d.Close()
	if err := d.tasks.UpdateTaskStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// SelectPriority applies the priority immediately and closes the dropdown
func (d *Dropdowns) SelectPriority(ctx context.Context, priority models.Priority) error {
	if d.kind != DropdownPriority {
		return nil
	}
	id := d.taskID
	d.Close()
	if _, err := d.tasks.UpdateTask(ctx, taskservice.UpdateTaskRequest{TaskID: id, Priority: &priority}); err != nil {
		return fmt.Errorf("failed to update priority: %w", err)
	}
	return nil
}
