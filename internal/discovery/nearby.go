// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/discovery/ranking"
	"github.com/tomtom215/wayfinder/internal/geo"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Nearby returns the points within the radius of p.Location, nearest first.
//
// Only the first NearbyScanLimit points of the catalog (by rating) are scanned.
func (e *Engine) Nearby(ctx context.Context, p models.NearbyParams) ([]models.PointOfInterest, error) {
	start := time.Now()
	e.nearbyScans.Add(1)

	if err := validateRequest(&p, nearbyMessages); err != nil {
		return nil, e.rejected(OpNearby, start, err)
	}

	radius := floatOr(p.RadiusKm, e.config.NearbyDefaultRadiusKm)
	limit := intOr(p.Limit, e.config.NearbyDefaultLimit)

	all, err := e.store.GetAll(ctx, e.config.NearbyScanLimit)
	if err != nil {
		return nil, e.storeFailed(ctx, OpNearby, start, ErrNearbyFailed, err)
	}

	within := make([]models.PointOfInterest, 0, len(all))
	for _, pt := range all {
		if geo.DistanceKm(*p.Location, pt.Coordinates) <= radius {
			within = append(within, pt)
		}
	}
	points := truncate(ranking.Distance{Origin: *p.Location}.Rank(within), limit)

	l := e.requestLogger(ctx)
	l.Debug().
		Float64("radius_km", radius).
		Int("scanned", len(all)).
		Int("returned", len(points)).
		Msg("nearby scan complete")

	e.succeeded(OpNearby, start, len(points))
	return points, nil
}
