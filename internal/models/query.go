// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

// SearchQuery describes a catalog search.
//
// Field order matches the order validation errors are reported in.
type SearchQuery struct {
	Limit       *int         `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset      *int         `json:"offset,omitempty" validate:"omitempty,min=0"`
	MinRating   *float64     `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	MaxDistance *float64     `json:"max_distance,omitempty" validate:"omitempty,gte=0"`
	Location    *Coordinates `json:"location,omitempty" validate:"required_with=MaxDistance"`
	Query       string       `json:"query,omitempty"`
	Categories  []Category   `json:"categories,omitempty"`
	PriceRanges []PriceRange `json:"price_ranges,omitempty"`
}

// SearchResult is one page of search output.
type SearchResult struct {
	Points  []PointOfInterest `json:"points"`
	Total   int               `json:"total"`
	HasMore bool              `json:"has_more"`
}

// RecommendationParams describes a recommendation request.
type RecommendationParams struct {
	Limit         *int         `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Location      *Coordinates `json:"location,omitempty" validate:"omitempty"`
	UserInterests []string     `json:"user_interests,omitempty"`
}

// NearbyParams describes a radius scan around a location.
type NearbyParams struct {
	Location *Coordinates `json:"location" validate:"required"`
	RadiusKm *float64     `json:"radius_km,omitempty" validate:"omitempty,gte=0"`
	Limit    *int         `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
