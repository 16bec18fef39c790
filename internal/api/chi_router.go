// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wayfinder/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	if router.handler.perfMon != nil {
		r.Use(router.handler.perfMon.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())

		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.chiMiddleware.RequestTimeout())
		r.Use(middleware.Compression)

		r.Route("/points", func(r chi.Router) {
			r.Get("/search", router.handler.SearchPoints)
			r.Get("/recommendations", router.handler.Recommendations)
			r.Get("/nearby", router.handler.NearbyPoints)
			r.Get("/popular", router.handler.PopularPoints)
			r.Get("/categories/{category}", router.handler.PointsByCategory)
			r.Get("/{id}", router.handler.GetPoint)
		})

		r.Route("/users/{userID}/favorites", func(r chi.Router) {
			r.Get("/", router.handler.ListFavorites)
			r.Get("/ids", router.handler.FavoriteIDs)
			r.Get("/{pointID}", router.handler.FavoriteStatus)
			r.Put("/{pointID}", router.handler.AddFavorite)
			r.Delete("/{pointID}", router.handler.RemoveFavorite)
			r.Post("/{pointID}/toggle", router.handler.ToggleFavorite)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
