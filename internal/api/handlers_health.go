// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/middleware"
)

// readinessTimeout bounds each dependency check.
const readinessTimeout = 2 * time.Second

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Uptime    float64           `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks"`
	Discovery discovery.Stats   `json:"discovery"`
}

// PerformanceReport is the payload of GET /api/v1/health/performance.
type PerformanceReport struct {
	Endpoints []middleware.EndpointStats `json:"endpoints"`
}

// Health reports overall status. It always returns 200; a failed dependency
// marks the status "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks, ok := h.runChecks(r.Context())

	status := "healthy"
	if !ok {
		status = "degraded"
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:    status,
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Discovery: h.discovery.Stats(),
	})
}

// HealthLive handles liveness check requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests (Kubernetes-style)
// Returns 200 OK only if every dependency check passes, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	checks, ok := h.runChecks(r.Context())
	if !ok {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service is not ready", checks)
		return
	}
	rw.Success(map[string]interface{}{
		"ready":  true,
		"checks": checks,
	})
}

// HealthPerformance returns per-route latency statistics.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.perfMon == nil {
		rw.NotFound("Performance monitoring is disabled")
		return
	}
	rw.Success(PerformanceReport{Endpoints: h.perfMon.Stats()})
}

// runChecks checks every dependency. The map holds "ok" or the error text.
func (h *Handler) runChecks(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(h.checks))
	healthy := true

	for _, c := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
		err := c.Check(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			results[c.Name] = err.Error()
			h.logger.Warn().Err(err).Str("check", c.Name).Msg("Readiness check failed")
			continue
		}
		results[c.Name] = "ok"
	}
	return results, healthy
}
