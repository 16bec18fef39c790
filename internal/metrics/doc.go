// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package metrics provides Prometheus collectors for Wayfinder.

All collectors are registered on the default registry through promauto and
exposed by the HTTP server at /metrics:

	curl http://localhost:3857/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)

Discovery Metrics:
  - discovery_operations_total: Operations by outcome (counter)
    Labels: operation (search, recommend, nearby, lookup), result
  - discovery_operation_duration_seconds: Operation latency (histogram)
  - discovery_results: Points returned per call (histogram)

Catalog Metrics:
  - catalog_store_duration_seconds: Store call latency (histogram)
    Labels: backend, operation
  - catalog_store_errors_total: Failed store calls (counter)
  - catalog_points: Points loaded at startup (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: State changes (counter)

Favorites and Events:
  - favorites_operations_total: Labels action, result
  - events_published_total: Labels topic, result
  - events_consumed_total: Labels topic

# Example PromQL

	# p95 search latency
	histogram_quantile(0.95, rate(discovery_operation_duration_seconds_bucket{operation="search"}[5m]))

	# catalog error ratio per backend
	rate(catalog_store_errors_total[5m]) / rate(catalog_store_duration_seconds_count[5m])
*/
package metrics
