// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package ranking orders candidate points of interest.
//
// Every Ranker is stable: points that compare equal keep their input order.
// Rankers return a new slice and never modify the input.
package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tomtom215/wayfinder/internal/geo"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Ranker orders a list of points.
type Ranker interface {
	// Name returns the ranker identifier (e.g., "distance", "interest").
	Name() string

	// Rank returns the points in ranked order.
	Rank(points []models.PointOfInterest) []models.PointOfInterest
}

// Default keeps the input order, which stores guarantee to be rating-descending.
type Default struct{}

// Name implements Ranker.
func (Default) Name() string { return "default" }

// Rank implements Ranker.
func (Default) Rank(points []models.PointOfInterest) []models.PointOfInterest {
	return slices.Clone(points)
}

// Distance orders points by ascending distance from Origin.
type Distance struct {
	Origin models.Coordinates
}

// Name implements Ranker.
func (Distance) Name() string { return "distance" }

// Rank implements Ranker.
func (d Distance) Rank(points []models.PointOfInterest) []models.PointOfInterest {
	type keyed struct {
		point models.PointOfInterest
		km    float64
	}

	ks := make([]keyed, len(points))
	for i, p := range points {
		ks[i] = keyed{point: p, km: geo.DistanceKm(d.Origin, p.Coordinates)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return cmp.Compare(a.km, b.km)
	})

	out := make([]models.PointOfInterest, len(ks))
	for i, k := range ks {
		out[i] = k.point
	}
	return out
}

// Score weights used by Interest.
const (
	CategoryMatchScore = 3
	TagMatchScore      = 1
	HighRatingScore    = 1

	// HighRatingThreshold is the rating at which HighRatingScore applies.
	HighRatingThreshold = 4.5
)

// Interest orders points by descending interest score. See Score.
type Interest struct {
	interests map[string]struct{}
}

// NewInterest builds an Interest ranker. Interests are matched case-insensitively
// and blank entries are ignored.
func NewInterest(interests []string) Interest {
	set := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		in = strings.ToLower(strings.TrimSpace(in))
		if in != "" {
			set[in] = struct{}{}
		}
	}
	return Interest{interests: set}
}

// Name implements Ranker.
func (Interest) Name() string { return "interest" }

// Empty reports whether the ranker has no usable interests.
func (r Interest) Empty() bool {
	return len(r.interests) == 0
}

// Score returns 3 when the category is an interest, plus 1 per tag that is an
// interest, plus 1 when the rating is at least 4.5.
func (r Interest) Score(p models.PointOfInterest) int {
	score := 0
	if _, ok := r.interests[strings.ToLower(string(p.Category))]; ok {
		score += CategoryMatchScore
	}
	for _, tag := range p.Tags {
		if _, ok := r.interests[strings.ToLower(tag)]; ok {
			score += TagMatchScore
		}
	}
	if p.Rating >= HighRatingThreshold {
		score += HighRatingScore
	}
	return score
}

// Rank implements Ranker.
func (r Interest) Rank(points []models.PointOfInterest) []models.PointOfInterest {
	type keyed struct {
		point models.PointOfInterest
		score int
	}

	ks := make([]keyed, len(points))
	for i, p := range points {
		ks[i] = keyed{point: p, score: r.Score(p)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]models.PointOfInterest, len(ks))
	for i, k := range ks {
		out[i] = k.point
	}
	return out
}

// Select picks the ranker for a query context: interests win over location,
// and location wins over the store order.
func Select(origin *models.Coordinates, interests []string) Ranker {
	if in := NewInterest(interests); !in.Empty() {
		return in
	}
	if origin != nil {
		return Distance{Origin: *origin}
	}
	return Default{}
}
