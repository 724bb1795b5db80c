package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Stores depend on it so views can re-render after any mutation.
type EventPublisher interface {
	// SendEvent delivers an event to every listener
	SendEvent(event Event) error

	// Listen returns a channel receiving every event sent after the call.
	// The channel closes when ctx is done or the publisher is closed.
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes all listener channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
