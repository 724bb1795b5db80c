package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventProjectsChanged EventType = "projects_changed"
	EventTasksChanged    EventType = "tasks_changed"
	EventDataImported    EventType = "data_imported"
	EventDataCleared     EventType = "data_cleared"
	EventBackupCreated   EventType = "backup_created"
)

// Event represents a state change notification
type Event struct {
	Type       EventType
	ProjectID  string    // Which project was affected, empty for global changes
	TaskID     string    // Which task was affected, if any
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
