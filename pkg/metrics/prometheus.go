package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	summaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_requests_total",
			Help: "Summaries requested, by input source and outcome",
		},
		[]string{"source", "outcome"},
	)

	completionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_completion_duration_seconds",
			Help:    "Latency of completion calls to the language model provider",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"provider", "outcome"},
	)

	promptTokens = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_prompt_tokens",
			Help:    "Estimated prompt size in tokens",
			Buckets: prometheus.ExponentialBuckets(16, 2, 10),
		},
	)
)

// Summary outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeSkipped  = "skipped"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSummary counts a summary request by source (text, product,
// description, reviews) and outcome.
func ObserveSummary(source, outcome string) {
	summaryRequestsTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveCompletion records the latency of one provider call.
func ObserveCompletion(provider, outcome string, elapsed time.Duration) {
	completionDuration.WithLabelValues(provider, outcome).Observe(elapsed.Seconds())
}

// ObservePromptTokens records the estimated size of an outgoing prompt.
func ObservePromptTokens(n int) {
	if n <= 0 {
		return
	}
	promptTokens.Observe(float64(n))
}
