package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublishesToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventTeacherRegistered, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTeacherRegistered, TeacherID: "teacher-1"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "teacher-1", seen[0].TeacherID)
}

func TestDispatcherIgnoresUnrelatedEvents(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventTeacherRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTeacherLoggedIn}))
	assert.Zero(t, calls)
}

func TestDispatcherRunsAllHandlersAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	boom := errors.New("boom")
	calls := 0
	d.Subscribe(EventProfileUpdated, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventProfileUpdated, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventProfileUpdated})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
