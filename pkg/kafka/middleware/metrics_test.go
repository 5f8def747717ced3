package kafka_middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsProducerMiddleware(t *testing.T) {
	m := &PublishMetrics{}
	mw := MetricsProducerMiddleware(m)
	msg := kafka.Message{Key: "1", Value: []byte("{}")}

	ok := func(context.Context, kafka.Message) error { return nil }
	fail := func(context.Context, kafka.Message) error { return errors.New("broker down") }

	require.NoError(t, mw(context.Background(), msg, ok))
	require.NoError(t, mw(context.Background(), msg, ok))
	require.Error(t, mw(context.Background(), msg, fail))

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.Published)
	assert.Equal(t, int64(1), s.Failed)
	assert.GreaterOrEqual(t, s.AvgDuration.Nanoseconds(), int64(0))
}

func TestPublishMetrics_EmptySnapshot(t *testing.T) {
	assert.Equal(t, PublishSnapshot{}, (&PublishMetrics{}).Snapshot())
}

func TestMetricsReporter_LogsOnClose(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.INFO, Format: logger.JSON, Output: &buf})

	m := &PublishMetrics{}
	_ = MetricsProducerMiddleware(m)(context.Background(), kafka.Message{}, func(context.Context, kafka.Message) error { return nil })

	require.NoError(t, NewMetricsReporter(m, log).Close())
	assert.Contains(t, buf.String(), `"msg":"Booking event publish summary"`)
	assert.Contains(t, buf.String(), `"published":1`)
}
