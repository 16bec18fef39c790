// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/favorites"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/middleware"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// DefaultPageSize is the search page size when the request has no limit.
const DefaultPageSize = 20

// Discovery is the read side served by the points routes.
// *discovery.Engine implements it.
type Discovery interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error)
	Recommend(ctx context.Context, p models.RecommendationParams) ([]models.PointOfInterest, error)
	Nearby(ctx context.Context, p models.NearbyParams) ([]models.PointOfInterest, error)
	Point(ctx context.Context, id string) (*models.PointOfInterest, error)
	ByCategory(ctx context.Context, category models.Category, limit *int) ([]models.PointOfInterest, error)
	Popular(ctx context.Context, limit *int) ([]models.PointOfInterest, error)
	Stats() discovery.Stats
}

// Favorites is the favorites use case served by the users routes.
// *favorites.Service implements it.
type Favorites interface {
	Execute(ctx context.Context, params favorites.Params) (*favorites.Result, error)
	IsFavorite(ctx context.Context, userID, pointID string) (bool, error)
	IDs(ctx context.Context, userID string) ([]string, error)
	Favorites(ctx context.Context, userID string) ([]models.PointOfInterest, error)
}

// ReadinessCheck is one dependency checked by /health/ready.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HandlerOptions configures NewHandler.
type HandlerOptions struct {
	// DefaultPageSize applies to search when no limit is given.
	DefaultPageSize int

	// Checks are run in order by the readiness endpoint.
	Checks []ReadinessCheck

	// Performance is optional; without it /health/performance returns 404.
	Performance *middleware.PerformanceMonitor
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_points.go: discovery endpoints
//   - handlers_favorites.go: favorites endpoints
//   - handlers_health.go: health and readiness checks
type Handler struct {
	discovery       Discovery
	favorites       Favorites
	checks          []ReadinessCheck
	perfMon         *middleware.PerformanceMonitor
	defaultPageSize int
	startTime       time.Time
	logger          zerolog.Logger
}

// NewHandler creates a handler. Both services are required.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandler(disc Discovery, favs Favorites, opts HandlerOptions, logger zerolog.Logger) (*Handler, error) {
	if disc == nil {
		return nil, errors.New("discovery service is required")
	}
	if favs == nil {
		return nil, errors.New("favorites service is required")
	}

	pageSize := opts.DefaultPageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Handler{
		discovery:       disc,
		favorites:       favs,
		checks:          opts.Checks,
		perfMon:         opts.Performance,
		defaultPageSize: pageSize,
		startTime:       time.Now(),
		logger:          logging.Component(logger, "api"),
	}, nil
}
