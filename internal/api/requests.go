// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Query parameter names.
const (
	paramQuery       = "q"
	paramCategory    = "category"
	paramPrice       = "price"
	paramMinRating   = "min_rating"
	paramLatitude    = "lat"
	paramLongitude   = "lon"
	paramMaxDistance = "max_distance"
	paramRadius      = "radius"
	paramLimit       = "limit"
	paramOffset      = "offset"
	paramInterests   = "interests"
)

// MsgPriceRangeUnknown is returned for an unrecognised price filter.
const MsgPriceRangeUnknown = "Price range must be a known price range"

// msgLocationPair is returned when only one of lat and lon is given.
const msgLocationPair = "lat and lon must be provided together"

// parseSearchQuery builds a SearchQuery from URL parameters. Range checks are
// left to the engine so that messages stay in one place.
func parseSearchQuery(values url.Values) (models.SearchQuery, error) {
	var q models.SearchQuery
	var err error

	q.Query = values.Get(paramQuery)

	if q.Limit, err = optionalInt(values, paramLimit); err != nil {
		return q, err
	}
	if q.Offset, err = optionalInt(values, paramOffset); err != nil {
		return q, err
	}
	if q.MinRating, err = optionalFloat(values, paramMinRating); err != nil {
		return q, err
	}
	if q.MaxDistance, err = optionalFloat(values, paramMaxDistance); err != nil {
		return q, err
	}
	if q.Location, err = optionalLocation(values); err != nil {
		return q, err
	}
	if q.Categories, err = parseCategories(values.Get(paramCategory)); err != nil {
		return q, err
	}
	if q.PriceRanges, err = parsePriceRanges(values.Get(paramPrice)); err != nil {
		return q, err
	}
	return q, nil
}

func parseRecommendationParams(values url.Values) (models.RecommendationParams, error) {
	var p models.RecommendationParams
	var err error

	if p.Limit, err = optionalInt(values, paramLimit); err != nil {
		return p, err
	}
	if p.Location, err = optionalLocation(values); err != nil {
		return p, err
	}
	p.UserInterests = parseCommaSeparated(values.Get(paramInterests))
	return p, nil
}

func parseNearbyParams(values url.Values) (models.NearbyParams, error) {
	var p models.NearbyParams
	var err error

	if p.Location, err = optionalLocation(values); err != nil {
		return p, err
	}
	if p.RadiusKm, err = optionalFloat(values, paramRadius); err != nil {
		return p, err
	}
	if p.Limit, err = optionalInt(values, paramLimit); err != nil {
		return p, err
	}
	return p, nil
}

// optionalInt returns nil when the parameter is absent or blank.
func optionalInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ParamError{Param: key, Message: key + " must be an integer"}
	}
	return &v, nil
}

// optionalFloat returns nil when the parameter is absent or blank.
func optionalFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ParamError{Param: key, Message: key + " must be a number"}
	}
	return &v, nil
}

// optionalLocation reads lat and lon as a pair. Neither present means no
// location; exactly one is an error.
func optionalLocation(values url.Values) (*models.Coordinates, error) {
	lat, err := optionalFloat(values, paramLatitude)
	if err != nil {
		return nil, err
	}
	lon, err := optionalFloat(values, paramLongitude)
	if err != nil {
		return nil, err
	}

	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil:
		return nil, &ParamError{Param: paramLatitude, Message: msgLocationPair}
	case lon == nil:
		return nil, &ParamError{Param: paramLongitude, Message: msgLocationPair}
	}
	return &models.Coordinates{Latitude: *lat, Longitude: *lon}, nil
}

func parseCategories(raw string) ([]models.Category, error) {
	parts := parseCommaSeparated(raw)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]models.Category, 0, len(parts))
	for _, part := range parts {
		c, err := models.ParseCategory(part)
		if err != nil {
			return nil, &discovery.ValidationError{Field: "Categories", Message: discovery.MsgCategoryUnknown}
		}
		out = append(out, c)
	}
	return out, nil
}

func parsePriceRanges(raw string) ([]models.PriceRange, error) {
	parts := parseCommaSeparated(raw)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]models.PriceRange, 0, len(parts))
	for _, part := range parts {
		p, err := models.ParsePriceRange(part)
		if err != nil {
			return nil, &discovery.ValidationError{Field: "PriceRanges", Message: MsgPriceRangeUnknown}
		}
		out = append(out, p)
	}
	return out, nil
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	parts := strings.Split(value, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
