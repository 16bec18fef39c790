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

// Recommend returns popular points for a user.
//
// With a location, points beyond the recommendation radius are dropped and
// the rest are sorted nearest first before truncation. With interests, the
// truncated list is then re-sorted by interest score. Interests reorder the
// result but never remove points from it.
//
//nolint:gocritic // hugeParam: p passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, p models.RecommendationParams) ([]models.PointOfInterest, error) {
	start := time.Now()
	e.recommendations.Add(1)

	if err := validateRequest(&p, recommendMessages); err != nil {
		return nil, e.rejected(OpRecommend, start, err)
	}

	limit := intOr(p.Limit, e.config.RecommendDefaultLimit)

	popular, err := e.store.GetPopular(ctx, limit*e.config.RecommendOverFetch)
	if err != nil {
		return nil, e.storeFailed(ctx, OpRecommend, start, ErrRecommendFailed, err)
	}

	points := make([]models.PointOfInterest, 0, len(popular))
	for _, pt := range popular {
		if pt.Rating < *e.config.RecommendMinRating {
			continue
		}
		if p.Location != nil && geo.DistanceKm(*p.Location, pt.Coordinates) > e.config.RecommendRadiusKm {
			continue
		}
		points = append(points, pt)
	}

	if p.Location != nil {
		points = ranking.Distance{Origin: *p.Location}.Rank(points)
	}
	points = truncate(points, limit)

	if interest := ranking.NewInterest(p.UserInterests); !interest.Empty() {
		points = interest.Rank(points)
	}

	l := e.requestLogger(ctx)
	l.Debug().
		Int("popular", len(popular)).
		Int("returned", len(points)).
		Bool("located", p.Location != nil).
		Int("interests", len(p.UserInterests)).
		Msg("recommendations complete")

	e.succeeded(OpRecommend, start, len(points))
	return points, nil
}
