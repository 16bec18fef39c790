// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware has the chi signature func(http.Handler) http.Handler:

  - RequestID: propagates X-Request-ID and seeds the logging context with
    request and correlation IDs
  - PrometheusMetrics: records api_requests_total, api_request_duration_seconds
    and api_active_requests, labelled by chi route pattern
  - Compression: gzip for clients that accept it
  - PerformanceMonitor.Middleware: sliding-window latency percentiles per
    route, logged when a request exceeds the slow threshold

Route patterns are used instead of raw paths so that path parameters such as
point and user IDs do not explode metric cardinality.
*/
package middleware
