// Package kanban lays tasks out in the three status columns and resolves
// drag-and-drop gestures into status changes.
package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/dotoo/internal/dnd"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// Column is one status lane
type Column struct {
	Status models.Status
	Title  string
	Key    string
	Tasks  []*models.Task
}

// Board groups tasks into the todo/doing/done columns, preserving input order
func Board(tasks []*models.Task) []Column {
	cols := make([]Column, len(models.Statuses))
	index := make(map[models.Status]int, len(models.Statuses))
	for i, s := range models.Statuses {
		cols[i] = Column{Status: s, Title: s.Label(), Key: dnd.ColumnKey(s), Tasks: []*models.Task{}}
		index[s] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			cols[i].Tasks = append(cols[i].Tasks, t)
		}
	}
	return cols
}

// taskStore is the slice of the task service the engine needs
type taskStore interface {
	GetTask(id string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.Status) error
}

// Engine resolves drops into status mutations. The only state it holds is
// the transient lifted task and hovered target.
type Engine struct {
	tasks taskStore

	mu     sync.Mutex
	lifted string
	over   string
}

var _ dnd.Handler = (*Engine)(nil)

// NewEngine creates a drag engine writing through tasks
func NewEngine(tasks taskStore) *Engine {
	return &Engine{tasks: tasks}
}

// DragStart captures the task being lifted
func (e *Engine) DragStart(taskID string) {
	e.mu.Lock()
	e.lifted = taskID
	e.mu.Unlock()
}

// DragOver records the target under the pointer
func (e *Engine) DragOver(targetID string) {
	e.mu.Lock()
	e.over = targetID
	e.mu.Unlock()
}

// Lifted returns the task being dragged, or ""
func (e *Engine) Lifted() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lifted
}

// Hovered returns the current drag-over target, or ""
func (e *Engine) Hovered() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.over
}

// Cancel ends a drag without a drop
func (e *Engine) Cancel() {
	e.mu.Lock()
	e.lifted, e.over = "", ""
	e.mu.Unlock()
}

// Drop resolves the target into a status and applies it. A column target
// yields its status; a task target yields that task's status. No target, an
// unknown task, or a drop on the dragged task itself changes nothing.
func (e *Engine) Drop(ctx context.Context, taskID, targetID string) (dnd.Outcome, error) {
	e.Cancel()

	target := dnd.ParseTarget(targetID)
	out := dnd.Outcome{Target: target}

	var status models.Status
	switch target.Kind {
	case dnd.TargetColumn:
		status = target.Status
	case dnd.TargetTask:
		if target.TaskID == taskID {
			return out, nil
		}
		over, err := e.tasks.GetTask(target.TaskID)
		if err != nil {
			slog.Debug("kanban drop on unknown task", "task_id", taskID, "target", targetID)
			return out, nil
		}
		status = over.Status
	default:
		return out, nil
	}

	current, err := e.tasks.GetTask(taskID)
	if err != nil {
		return out, fmt.Errorf("failed to get dragged task: %w", err)
	}
	if current.Status == status {
		return out, nil
	}
	if err := e.tasks.UpdateTaskStatus(ctx, taskID, status); err != nil {
		return out, fmt.Errorf("failed to move task: %w", err)
	}
	out.Applied = true
	out.Status = status
	return out, nil
}
