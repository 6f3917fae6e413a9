package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded for cart operations.
const (
	OutcomeSuccess   = "success"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// CartMetrics records cart operation counts, batch sizes, and latency.
type CartMetrics struct {
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
	batchItems *prometheus.HistogramVec
}

// NewCartMetrics registers the cart metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_operation_duration_seconds",
		Help:    "Duration of cart operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart operations by outcome.",
	}, []string{"op", "outcome"})
	batchItems := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_batch_items",
		Help:    "Number of items submitted per cart mutation.",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	}, []string{"op"})
	reg.MustRegister(duration, operations, batchItems)
	return &CartMetrics{
		duration:   duration,
		operations: operations,
		batchItems: batchItems,
	}
}

// Observe records one finished operation.
func (c *CartMetrics) Observe(op, outcome string, duration time.Duration) {
	if c == nil || c.operations == nil {
		return
	}
	op = normalizeLabel(op)
	c.operations.WithLabelValues(op, normalizeLabel(outcome)).Inc()
	c.duration.WithLabelValues(op).Observe(duration.Seconds())
}

// ObserveBatch records the size of a submitted mutation batch.
func (c *CartMetrics) ObserveBatch(op string, items int) {
	if c == nil || c.batchItems == nil {
		return
	}
	c.batchItems.WithLabelValues(normalizeLabel(op)).Observe(float64(items))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
