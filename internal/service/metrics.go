package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Metrics are the Prometheus-facing counters. They complement, not
// replace, the in-process Stats: Stats reset, these never do.
type Metrics struct {
	parses   *prometheus.CounterVec
	failures prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics registers the parse metrics on reg. Passing a fresh registry
// per instance keeps parallel tests from colliding on registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cashflow_parse_total",
			Help: "Completed parses by source strategy and confidence.",
		}, []string{"source", "confidence"}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_parse_failures_total",
			Help: "Parses that failed beyond local fallback.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashflow_parse_duration_seconds",
			Help:    "Wall-clock time to produce a record.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
}

func (m *Metrics) observe(rec *transaction.Parsed) {
	m.parses.WithLabelValues(rec.Source, string(rec.Confidence)).Inc()
	m.duration.Observe(time.Duration(rec.ProcessingTime * int64(time.Millisecond)).Seconds())
}
