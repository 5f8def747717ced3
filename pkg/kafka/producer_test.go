package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriters("hotel.bookings", w, "", nil)

	msg, err := NewMessage().
		WithKey("room-1").
		WithValue(map[string]int{"total_price": 1000}).
		WithEventType("booking.created").
		Build()
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), msg))
	require.Len(t, w.messages, 1)
	assert.Equal(t, "room-1", string(w.messages[0].Key))
	assert.JSONEq(t, `{"total_price":1000}`, string(w.messages[0].Value))
	assert.Equal(t, "booking.created", header(w.messages[0], HeaderEventType))
	assert.NotEmpty(t, header(w.messages[0], HeaderEventID))
}

func TestProducer_RejectsInvalidMessages(t *testing.T) {
	p := NewProducerWithWriters("t", &fakeWriter{}, "", nil)

	err := p.Publish(context.Background(), Message{Value: []byte("x")})
	assert.ErrorIs(t, err, ErrEmptyKey)

	err = p.Publish(context.Background(), Message{Key: "k"})
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestProducer_Closed(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriters("t", w, "", nil)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")})
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestProducer_DLQOnFailure(t *testing.T) {
	writeErr := errors.New("leader not available")
	w := &fakeWriter{err: writeErr}
	dlq := &fakeWriter{}
	p := NewProducerWithWriters("hotel.bookings", w, "hotel.bookings.dlq", dlq)

	msg, err := NewMessage().WithKey("room-2").WithValue("payload").Build()
	require.NoError(t, err)

	err = p.Publish(context.Background(), msg)
	assert.ErrorIs(t, err, writeErr)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, "hotel.bookings", header(dlq.messages[0], HeaderOriginalTopic))
	assert.Equal(t, writeErr.Error(), header(dlq.messages[0], "dlq-error"))
	assert.Empty(t, msg.Headers[HeaderOriginalTopic], "caller's headers must not be modified")
}

func TestProducer_MiddlewareOrder(t *testing.T) {
	p := NewProducerWithWriters("t", &fakeWriter{}, "", nil)
	var calls []string
	mw := func(name string) ProducerMiddleware {
		return func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			calls = append(calls, name)
			return next(ctx, msg)
		}
	}
	p.Use(mw("first"))
	p.Use(mw("second"))

	require.NoError(t, p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestMessageBuilder_InvalidValue(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	assert.ErrorIs(t, err, ErrInvalidMessage)
}
