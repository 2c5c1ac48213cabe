package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventHotelCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventHotelCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := Event{ID: "e-1", Type: EventHotelCreated, Timestamp: time.Now()}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, got, 2)
	assert.Equal(t, "e-1", got[0].ID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventMessageSent, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventHotelDeleted}))
	assert.False(t, called)
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	order := []string{}
	d.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("handler failure")
	})
	d.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventAccountRegistered})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
