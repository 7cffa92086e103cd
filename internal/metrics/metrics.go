// Package metrics exposes Prometheus collectors for the HTTP surface and the
// upstream generation calls, plus helpers that record into them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emailwriter"

// Generation outcomes used as the "outcome" label.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeUpstreamError = "upstream_error"
	OutcomeParseError    = "parse_error"
	OutcomeTimeout       = "timeout"
	OutcomeFailed        = "failed"
)

var (
	// HTTPRequestDuration observes every inbound request by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
		},
		[]string{"method", "route", "status"},
	)

	// GenerationDuration observes upstream generation latency.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Upstream email generation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 11), // 50ms to ~51s
		},
		[]string{"backend", "outcome"},
	)

	// GenerationTotal counts generation attempts by outcome.
	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_total",
			Help:      "Total number of email generation attempts",
		},
		[]string{"backend", "outcome"},
	)
)

// RecordHTTPRequestDuration records one inbound request.
func RecordHTTPRequestDuration(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordGeneration records one generation attempt.
func RecordGeneration(backend, outcome string, duration time.Duration) {
	GenerationDuration.WithLabelValues(backend, outcome).Observe(duration.Seconds())
	GenerationTotal.WithLabelValues(backend, outcome).Inc()
}
