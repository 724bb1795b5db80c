// Package dnd defines the drag-and-drop contract between an interaction
// source and the layout engines: drag-start, drag-over and drop callbacks
// carrying opaque target ids, plus the codec for those ids.
package dnd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/dotoo/internal/models"
)

const dayPrefix = "day-"

// TargetKind says what a drop target id refers to
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetColumn
	TargetTask
	TargetDay
)

func (k TargetKind) String() string {
	switch k {
	case TargetColumn:
		return "column"
	case TargetTask:
		return "task"
	case TargetDay:
		return "day"
	}
	return "none"
}

// Target is a decoded drop target id
type Target struct {
	Kind   TargetKind
	Status models.Status // TargetColumn
	TaskID string        // TargetTask
	Year   int           // TargetDay
	Month  time.Month
	Day    int
}

// ColumnKey is the target id of a kanban column
func ColumnKey(s models.Status) string {
	return string(s)
}

// DayKey is the target id of a calendar day
func DayKey(t time.Time) string {
	return fmt.Sprintf("%s%04d-%02d-%02d", dayPrefix, t.Year(), int(t.Month()), t.Day())
}

// ParseTarget decodes a target id. Empty ids decode to TargetNone; ids that
// are neither a column nor a well-formed day are treated as task ids.
func ParseTarget(id string) Target {
	if id == "" {
		return Target{Kind: TargetNone}
	}
	if s := models.Status(id); s.Valid() {
		return Target{Kind: TargetColumn, Status: s}
	}
	if strings.HasPrefix(id, dayPrefix) {
		if d, err := time.Parse(time.DateOnly, id[len(dayPrefix):]); err == nil {
			return Target{Kind: TargetDay, Year: d.Year(), Month: d.Month(), Day: d.Day()}
		}
	}
	return Target{Kind: TargetTask, TaskID: id}
}

// NoonIn returns noon of the target day in loc. Noon keeps the date stable
// under any UTC offset.
func (t Target) NoonIn(loc *time.Location) time.Time {
	return time.Date(t.Year, t.Month, t.Day, 12, 0, 0, 0, loc)
}

// Handler receives the three interaction callbacks. Implementations interpret
// the target id and issue at most one store mutation on drop.
type Handler interface {
	DragStart(taskID string)
	DragOver(targetID string)
	Drop(ctx context.Context, taskID, targetID string) (Outcome, error)
}

// Outcome reports what a drop did
type Outcome struct {
	Applied bool
	Target  Target
	Status  models.Status // set when a status changed
	DueDate *time.Time    // set when a due date changed
}
