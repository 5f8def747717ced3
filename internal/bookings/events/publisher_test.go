package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/model"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	messages []kafkago.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func headers(msg kafkago.Message) map[string]string {
	out := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		out[h.Key] = string(h.Value)
	}
	return out
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:                   "7f1c3f5e-2d4a-4b8e-9a61-0c2f6a9d1e11",
		RoomNumber:           1,
		RoomType:             model.RoomTypeStandard,
		PricePerNight:        1000,
		UserID:               1,
		BalanceBeforeBooking: 5000,
		CheckIn:              model.NewDate(2026, 7, 7),
		CheckOut:             model.NewDate(2026, 7, 8),
		TotalPrice:           1000,
		CreatedAt:            time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_PublishBookingCreated(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(kafka.NewProducerWithWriters("hotel.bookings", w, "", nil), "bookings")

	require.NoError(t, p.PublishBookingCreated(context.Background(), sampleBooking()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "1", string(msg.Key))
	assert.Equal(t, time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), msg.Time)

	h := headers(msg)
	assert.Equal(t, EventTypeBookingCreated, h[kafka.HeaderEventType])
	assert.Equal(t, SchemaVersion, h[kafka.HeaderSchemaVersion])
	assert.Equal(t, "bookings", h[kafka.HeaderSource])
	assert.Equal(t, sampleBooking().ID, h[kafka.HeaderCorrelationID])
	assert.NotEmpty(t, h[kafka.HeaderEventID])

	var payload BookingCreated
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, NewBookingCreated(sampleBooking()), payload)
	assert.Equal(t, 1, payload.Nights)
}

func TestKafkaPublisher_PropagatesFailure(t *testing.T) {
	w := &captureWriter{err: errors.New("broker down")}
	p := NewKafkaPublisher(kafka.NewProducerWithWriters("hotel.bookings", w, "", nil), "bookings")

	err := p.PublishBookingCreated(context.Background(), sampleBooking())
	assert.ErrorContains(t, err, "broker down")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishBookingCreated(context.Background(), sampleBooking()))
	assert.NoError(t, p.Close())
}
