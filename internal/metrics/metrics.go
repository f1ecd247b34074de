// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the cat-api server and
// small helpers to record into them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome constants for auth operation metrics.
const (
	OutcomeSuccess            = "success"
	OutcomeValidationError    = "validation_error"
	OutcomeDuplicateEmail     = "duplicate_email"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeNotFound           = "not_found"
	OutcomeError              = "error"
)

// Status constants for upstream request metrics.
const (
	UpstreamStatusOK             = "ok"
	UpstreamStatusHTTPError      = "http_error"
	UpstreamStatusTransportError = "transport_error"
)

// HTTPRequests is the counter for served HTTP requests.
// Use RegisterMetrics to register this with a Prometheus registry.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catapi_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status code",
	},
	[]string{"method", "route", "code"},
)

// HTTPDuration is the histogram for HTTP request latency.
var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "catapi_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthOperations is the counter for register, login and profile operations.
var AuthOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catapi_auth_operations_total",
		Help: "Total number of auth operations by operation and outcome",
	},
	[]string{"operation", "outcome"},
)

// UpstreamRequests is the counter for calls to the upstream cat API.
var UpstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catapi_upstream_requests_total",
		Help: "Total number of upstream cat API requests by operation and status",
	},
	[]string{"operation", "status"},
)

// UpstreamDuration is the histogram for upstream cat API latency.
var UpstreamDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "catapi_upstream_request_duration_seconds",
		Help:    "Upstream cat API request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// RegisterMetrics registers the application collectors with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(AuthOperations)
	reg.MustRegister(UpstreamRequests)
	reg.MustRegister(UpstreamDuration)
}

// NewRegistry returns a registry with the Go runtime and process collectors
// and every application collector.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	RegisterMetrics(reg)
	return reg
}

// Handler serves the contents of reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordHTTPRequest records one served request.
// route is the chi route pattern, not the raw path, to bound cardinality.
func RecordHTTPRequest(method, route string, code int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthOperation increments the auth operation counter.
// outcome is one of the Outcome* constants.
func RecordAuthOperation(operation, outcome string) {
	AuthOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordUpstreamRequest records one call to the upstream cat API.
// status is one of the UpstreamStatus* constants.
func RecordUpstreamRequest(operation, status string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(operation, status).Inc()
	UpstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
