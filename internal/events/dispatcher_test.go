package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishSubscribe(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventInvoiceCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := NewEvent(EventInvoiceCreated, "user-1", InvoiceCreatedPayload{InvoiceID: "inv-1"})
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, event.ID, got[0].ID)
	assert.Equal(t, "user-1", got[0].OwnerID)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestDispatcher_UnsubscribedTypeIgnored(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventInvoiceDeleted, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventInvoiceCreated, "user-1", nil)))
	assert.False(t, called)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventInvoiceUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventInvoiceUpdated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventInvoiceUpdated, "user-1", nil)))
	assert.True(t, secondCalled)
}
