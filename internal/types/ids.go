package types

import "github.com/google/uuid"

// ProjectID identifies a project. IDs are opaque strings so imported data
// from any source keeps its identifiers.
type ProjectID = string

// TaskID identifies a task
type TaskID = string

// NewID returns a fresh random identifier
func NewID() string {
	return uuid.NewString()
}
