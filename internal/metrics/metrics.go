// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package metrics provides Prometheus metrics collection for Moodatlas.
//
// Metrics are exposed at /metrics in Prometheus text format. Collectors are
// registered via promauto at package load; packages increment them directly.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Insight engine metrics
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Total insight productions by outcome",
		},
		[]string{"outcome"}, // "service", "fallback"
	)

	InsightServiceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_service_errors_total",
			Help: "Total generative text service failures by reason",
		},
		[]string{"reason"}, // "timeout", "breaker_open", "request", "status"
	)

	InsightServiceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insight_service_duration_seconds",
			Help:    "Generative text service call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Catalog client metrics
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total catalog API requests by operation and result",
		},
		[]string{"operation", "result"}, // operation: "search", "token"; result: "success", "error"
	)

	CatalogTokenRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_token_refreshes_total",
			Help: "Total catalog credential refreshes",
		},
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Catalog API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Recommendation engine metrics
	RecommendationBundles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_bundles_total",
			Help: "Total recommendation bundles by mode",
		},
		[]string{"mode"}, // "hybrid", "static"
	)

	// Circuit breaker metrics (shared by insight and catalog breakers)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordDBQuery observes a database query duration, recording an error if one
// occurred.
func RecordDBQuery(operation, table string, start time.Time, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request outcome.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
