// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Discovery Metrics
	DiscoveryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_operations_total",
			Help: "Total number of discovery operations by outcome",
		},
		[]string{"operation", "result"}, // result: "success", "invalid", "error"
	)

	DiscoveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_operation_duration_seconds",
			Help:    "Duration of discovery operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DiscoveryResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_results",
			Help:    "Number of points returned per discovery operation",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	// Catalog Store Metrics
	CatalogStoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_store_duration_seconds",
			Help:    "Duration of catalog store calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	CatalogStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_store_errors_total",
			Help: "Total number of failed catalog store calls",
		},
		[]string{"backend", "operation"},
	)

	CatalogPoints = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_points",
			Help: "Number of points loaded into the catalog at startup",
		},
		[]string{"backend"},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog point cache lookups by result",
		},
		[]string{"backend", "result"}, // result: "hit", "miss"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Favorites Metrics
	FavoritesOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_operations_total",
			Help: "Total number of favorites operations by action and outcome",
		},
		[]string{"action", "result"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"topic", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Total number of domain events consumed",
		},
		[]string{"topic"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDiscovery records the outcome of one discovery operation.
// results is ignored unless result is "success".
func RecordDiscovery(operation, result string, duration time.Duration, results int) {
	DiscoveryOperations.WithLabelValues(operation, result).Inc()
	DiscoveryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if result == "success" {
		DiscoveryResults.WithLabelValues(operation).Observe(float64(results))
	}
}

// RecordCatalogCall records a catalog store call.
func RecordCatalogCall(backend, operation string, duration time.Duration, err error) {
	CatalogStoreDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		CatalogStoreErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordCatalogCache records one point cache lookup.
func RecordCatalogCache(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CatalogCacheLookups.WithLabelValues(backend, result).Inc()
}

// RecordFavorite records a favorites operation.
func RecordFavorite(action string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	FavoritesOperations.WithLabelValues(action, result).Inc()
}

// RecordEventPublished records a publish attempt on topic.
func RecordEventPublished(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordEventConsumed records a consumed event on topic.
func RecordEventConsumed(topic string) {
	EventsConsumed.WithLabelValues(topic).Inc()
}
