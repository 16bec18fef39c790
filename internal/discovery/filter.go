// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"strings"

	"github.com/tomtom215/wayfinder/internal/geo"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Filter is the conjunction of the constraints in a SearchQuery.
// Absent constraints match everything.
type Filter struct {
	categories  map[models.Category]struct{}
	prices      map[models.PriceRange]struct{}
	minRating   *float64
	text        string
	origin      *models.Coordinates
	maxDistance *float64
}

// NewFilter builds the filter for q. The distance bound is only active when
// both Location and MaxDistance are set.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func NewFilter(q models.SearchQuery) Filter {
	f := Filter{
		minRating: q.MinRating,
		text:      strings.ToLower(strings.TrimSpace(q.Query)),
	}

	if len(q.Categories) > 0 {
		f.categories = make(map[models.Category]struct{}, len(q.Categories))
		for _, c := range q.Categories {
			f.categories[c] = struct{}{}
		}
	}
	if len(q.PriceRanges) > 0 {
		f.prices = make(map[models.PriceRange]struct{}, len(q.PriceRanges))
		for _, p := range q.PriceRanges {
			f.prices[p] = struct{}{}
		}
	}
	if q.Location != nil && q.MaxDistance != nil {
		f.origin = q.Location
		f.maxDistance = q.MaxDistance
	}

	return f
}

// Match reports whether p satisfies every constraint.
//
//nolint:gocritic // hugeParam: p passed by value to match the slice element type
func (f Filter) Match(p models.PointOfInterest) bool {
	if f.categories != nil {
		if _, ok := f.categories[p.Category]; !ok {
			return false
		}
	}
	if f.prices != nil {
		if _, ok := f.prices[p.PriceRange]; !ok {
			return false
		}
	}
	if f.minRating != nil && p.Rating < *f.minRating {
		return false
	}
	if f.text != "" && !matchesText(p, f.text) {
		return false
	}
	if f.origin != nil && geo.DistanceKm(*f.origin, p.Coordinates) > *f.maxDistance {
		return false
	}
	return true
}

// Apply returns the matching points in their original order.
func (f Filter) Apply(points []models.PointOfInterest) []models.PointOfInterest {
	out := make([]models.PointOfInterest, 0, len(points))
	for _, p := range points {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// matchesText expects needle to be lowercase already.
//
//nolint:gocritic // hugeParam: p passed by value to match the slice element type
func matchesText(p models.PointOfInterest, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
