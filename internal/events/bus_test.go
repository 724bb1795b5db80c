package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_FanOutAndSequence(t *testing.T) {
	bus := NewBus()
	defer bus.Close()
	ctx := context.Background()

	a, err := bus.Listen(ctx)
	require.NoError(t, err)
	b, err := bus.Listen(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventTasksChanged, TaskID: "t1"}))
	require.NoError(t, bus.SendEvent(Event{Type: EventProjectsChanged}))

	first := receive(t, a)
	assert.Equal(t, EventTasksChanged, first.Type)
	assert.Equal(t, int64(1), first.SequenceID)
	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, int64(2), receive(t, a).SequenceID)

	assert.Equal(t, "t1", receive(t, b).TaskID)
}

func TestBus_ListenerRemovedOnCancel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("listener channel was not closed")
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, ok := <-ch
	assert.False(t, ok)
	assert.ErrorIs(t, bus.SendEvent(Event{}), ErrBusClosed)

	_, err = bus.Listen(context.Background())
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestBus_SlowListenerDoesNotBlock(t *testing.T) {
	bus := NewBus()
	defer bus.Close()
	_, err := bus.Listen(context.Background())
	require.NoError(t, err)

	for i := 0; i < listenerBuffer*2; i++ {
		require.NoError(t, bus.SendEvent(Event{Type: EventTasksChanged}))
	}
}
