package events

import (
	"errors"
	"log/slog"
)

// Publish sends event on client. A nil client is a no-op so stores work
// without a bus. Events are notifications only: a failed send is logged and
// returned, and callers carry on.
func Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil
	}

	err := client.SendEvent(event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrBusClosed):
		// shutdown in progress
		slog.Debug("event dropped on closed bus", "event_type", event.Type)
	default:
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"project_id", event.ProjectID,
			"error", err)
	}
	return err
}
