// Package metrics provides Prometheus metrics for the Wikipedia MCP server.
// It tracks tool calls, upstream API latency, pagination depth and error rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikipedia_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// UpstreamAPILatency measures upstream call latency by service and action
	UpstreamAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_api_latency_seconds",
		Help:      "Upstream API call latency by service and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "action"})

	// UpstreamAPIRequestsTotal counts upstream API requests
	UpstreamAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_api_requests_total",
		Help:      "Total upstream API requests by service, action and status",
	}, []string{"service", "action", "status"})

	// UpstreamAPIErrors counts upstream API errors by error code
	UpstreamAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_api_errors_total",
		Help:      "Upstream API errors by service, action and error code",
	}, []string{"service", "action", "error_code"})

	// ContinuationPages counts result pages fetched while following continuation tokens
	ContinuationPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "continuation_pages_total",
		Help:      "Result pages fetched by the pagination driver, by continuation key",
	}, []string{"continuation_key"})

	// PageViewMonths counts monthly page-view requests
	PageViewMonths = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "pageview_months_total",
		Help:      "Monthly page-view statistics requests issued",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// ContentSize tracks content sizes returned to callers
	ContentSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_size_bytes",
		Help:      "Content size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"operation"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records an upstream API call
func RecordAPICall(service, action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	UpstreamAPIRequestsTotal.WithLabelValues(service, action, status).Inc()
	UpstreamAPILatency.WithLabelValues(service, action).Observe(duration)
	if errorCode != "" {
		UpstreamAPIErrors.WithLabelValues(service, action, errorCode).Inc()
	}
}

// RecordContinuationPage records one page fetched by the pagination driver
func RecordContinuationPage(key string) {
	ContinuationPages.WithLabelValues(key).Inc()
}

// RecordContentSize records the size of content handed back for an operation
func RecordContentSize(operation string, size int) {
	ContentSize.WithLabelValues(operation).Observe(float64(size))
}
