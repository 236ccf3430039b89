package loop

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the loop collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pushparty").
	Namespace string

	// Subsystem is the metrics subsystem (default: "loop").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for task duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the loop collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics, useful when several
// loops share one registry.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "pushparty",
		Subsystem: "loop",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	tasksTotal      prometheus.Counter
	timersScheduled prometheus.Counter
	timersCancelled prometheus.Counter
	queueDepth      prometheus.Gauge
	taskDuration    prometheus.Histogram
}

func newMetrics(cfg MetricsConfig) *metrics {
	factory := promauto.With(cfg.Registry)

	return &metrics{
		tasksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "tasks_total",
			Help:        "Total number of callbacks executed by the loop",
			ConstLabels: cfg.ConstLabels,
		}),
		timersScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "timers_scheduled_total",
			Help:        "Total number of timers scheduled",
			ConstLabels: cfg.ConstLabels,
		}),
		timersCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "timers_cancelled_total",
			Help:        "Total number of timers stopped before firing",
			ConstLabels: cfg.ConstLabels,
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "queue_depth",
			Help:        "Number of callbacks waiting to run",
			ConstLabels: cfg.ConstLabels,
		}),
		taskDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "task_duration_seconds",
			Help:        "Callback execution time in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// The recording helpers are nil-safe so an uninstrumented loop pays one
// pointer check per call.

func (m *metrics) taskRan(d time.Duration) {
	if m == nil {
		return
	}
	m.tasksTotal.Inc()
	m.taskDuration.Observe(d.Seconds())
}

func (m *metrics) timerScheduled() {
	if m == nil {
		return
	}
	m.timersScheduled.Inc()
}

func (m *metrics) timerCancelled() {
	if m == nil {
		return
	}
	m.timersCancelled.Inc()
}

func (m *metrics) setQueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}
