package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/logger"
)

// PublishMetrics counts producer outcomes. The zero value is ready to use.
type PublishMetrics struct {
	published     atomic.Int64
	failed        atomic.Int64
	durationTotal atomic.Int64 // nanoseconds, successful and failed publishes
}

type PublishSnapshot struct {
	Published   int64
	Failed      int64
	AvgDuration time.Duration
}

func (m *PublishMetrics) Snapshot() PublishSnapshot {
	published := m.published.Load()
	failed := m.failed.Load()

	var avg time.Duration
	if total := published + failed; total > 0 {
		avg = time.Duration(m.durationTotal.Load() / total)
	}
	return PublishSnapshot{
		Published:   published,
		Failed:      failed,
		AvgDuration: avg,
	}
}

// MetricsProducerMiddleware records every publish in m.
func MetricsProducerMiddleware(m *PublishMetrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		m.durationTotal.Add(int64(time.Since(start)))
		if err != nil {
			m.failed.Add(1)
		} else {
			m.published.Add(1)
		}

		return err
	}
}

// MetricsReporter logs the final counters when closed. It is meant to be
// handed to the application as a shutdown closer.
type MetricsReporter struct {
	metrics *PublishMetrics
	log     *logger.Logger
}

func NewMetricsReporter(m *PublishMetrics, log *logger.Logger) *MetricsReporter {
	return &MetricsReporter{metrics: m, log: log}
}

func (r *MetricsReporter) Close() error {
	s := r.metrics.Snapshot()
	r.log.Info("Booking event publish summary",
		"published", s.Published,
		"failed", s.Failed,
		"avg_duration_ms", s.AvgDuration.Milliseconds(),
	)
	return nil
}
