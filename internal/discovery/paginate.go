// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import "github.com/tomtom215/wayfinder/internal/models"

// Paginate slices points to [offset, offset+limit). Total is len(points).
// Offset and limit must already be validated.
func Paginate(points []models.PointOfInterest, offset, limit int) models.SearchResult {
	total := len(points)

	// Clamp before adding so offsets near math.MaxInt cannot overflow.
	start := min(offset, total)
	end := start + min(limit, total-start)

	page := make([]models.PointOfInterest, end-start)
	copy(page, points[start:end])

	return models.SearchResult{
		Points:  page,
		Total:   total,
		HasMore: end < total,
	}
}

// truncate returns at most n points.
func truncate(points []models.PointOfInterest, n int) []models.PointOfInterest {
	if len(points) > n {
		return points[:n]
	}
	return points
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
