// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"

	"github.com/tomtom215/wayfinder/internal/models"
)

// CatalogStore is the read interface the engine consumes.
//
// List results are ordered by rating descending, ties by ID ascending.
type CatalogStore interface {
	// GetByID returns the point, or nil with a nil error when it does not exist.
	GetByID(ctx context.Context, id string) (*models.PointOfInterest, error)

	// GetByIDs returns the points that exist among ids. The store batches
	// lookups in groups of at most ten.
	GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error)

	// GetByCategory returns up to limit points in category.
	GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error)

	// GetPopular returns up to limit points rated 4.0 or higher.
	GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error)

	// GetAll returns up to limit points.
	GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error)
}
