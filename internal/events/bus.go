package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const listenerBuffer = 64

// Bus is an in-process EventPublisher. Slow listeners drop events rather
// than block the sender.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	seq       int64
	closed    bool
	done      chan struct{}
}

// NewBus creates an open bus with no listeners
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]chan Event), done: make(chan struct{})}
}

// SendEvent stamps the event with a sequence number and fans it out
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.seq++
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Debug("dropping event for slow listener",
				"listener", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a new listener
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
	}
}

// Close closes every listener channel. Closing twice is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	return nil
}
