package loop

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultQueueCapacity = 64

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for lifecycle and panic reports.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithPanicHandler recovers panics raised by callbacks and hands them to
// handler. Without it a panicking callback crashes Run, which is what you
// want for programmer errors surfacing from combinators.
func WithPanicHandler(handler PanicHandler) Option {
	return func(l *Loop) {
		l.panicHandler = handler
	}
}

// WithQueueCapacity sets the initial capacity of the task queue.
func WithQueueCapacity(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueCap = n
		}
	}
}

// WithMetrics registers the loop's Prometheus collectors with reg.
func WithMetrics(reg prometheus.Registerer, opts ...MetricsOption) Option {
	return func(l *Loop) {
		cfg := defaultMetricsConfig()
		cfg.Registry = reg
		for _, opt := range opts {
			opt(&cfg)
		}
		l.metrics = newMetrics(cfg)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
