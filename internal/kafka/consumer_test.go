package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConsumer_handle(t *testing.T) {
	c := &Consumer{log: zap.NewNop().Sugar()}

	payload := []byte(`{"type":"booking_created","reference":"ref-1","booking_id":10,"flight_id":7}`)
	var got BookingEvent
	err := c.handle(context.Background(), payload, func(_ context.Context, event BookingEvent) error {
		got = event
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "booking_created", got.Type)
	assert.Equal(t, "ref-1", got.Reference)
	assert.Equal(t, int64(7), got.FlightID)
}

func TestConsumer_handle_malformedSkipped(t *testing.T) {
	c := &Consumer{log: zap.NewNop().Sugar()}

	called := false
	err := c.handle(context.Background(), []byte(`not json`), func(_ context.Context, _ BookingEvent) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestConsumer_handle_handlerError(t *testing.T) {
	c := &Consumer{log: zap.NewNop().Sugar()}

	boom := errors.New("smtp down")
	err := c.handle(context.Background(), []byte(`{"type":"booking_created"}`), func(_ context.Context, _ BookingEvent) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}
