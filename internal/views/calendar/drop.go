package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/dotoo/internal/dnd"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// taskUpdater is the slice of the task store a drop needs
type taskUpdater interface {
	UpdateTask(ctx context.Context, req taskservice.UpdateTaskRequest) (*models.Task, error)
}

// Rescheduler turns drops on day cells into due-date changes
type Rescheduler struct {
	tasks taskUpdater
	loc   *time.Location

	mu     sync.Mutex
	lifted string
	over   string
}

var _ dnd.Handler = (*Rescheduler)(nil)

// NewRescheduler creates a drop handler writing through tasks
func NewRescheduler(tasks taskUpdater, loc *time.Location) *Rescheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Rescheduler{tasks: tasks, loc: loc}
}

// DragStart records the lifted task for the drag avatar
func (r *Rescheduler) DragStart(taskID string) {
	r.mu.Lock()
	r.lifted = taskID
	r.mu.Unlock()
}

// DragOver records the hovered target
func (r *Rescheduler) DragOver(targetID string) {
	r.mu.Lock()
	r.over = targetID
	r.mu.Unlock()
}

// Lifted returns the task currently being dragged, if any
func (r *Rescheduler) Lifted() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lifted
}

// Drop sets the task's due date to local noon of the target day. Targets
// that are not day cells are ignored.
func (r *Rescheduler) Drop(ctx context.Context, taskID, targetID string) (dnd.Outcome, error) {
	r.mu.Lock()
	r.lifted, r.over = "", ""
	r.mu.Unlock()

	target := dnd.ParseTarget(targetID)
	out := dnd.Outcome{Target: target}
	if target.Kind != dnd.TargetDay || taskID == "" {
		slog.Debug("calendar drop ignored", "task_id", taskID, "target", targetID)
		return out, nil
	}

	due := target.NoonIn(r.loc)
	if _, err := r.tasks.UpdateTask(ctx, taskservice.UpdateTaskRequest{TaskID: taskID, DueDate: &due}); err != nil {
		return out, fmt.Errorf("failed to reschedule task: %w", err)
	}
	out.Applied = true
	out.DueDate = &due
	return out, nil
}
