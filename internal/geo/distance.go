// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package geo provides great-circle distance math for point coordinates.
package geo

import (
	"math"

	"github.com/tomtom215/wayfinder/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the Haversine distance between a and b in kilometers.
// Identical points return exactly 0 and the result is symmetric in its arguments.
func DistanceKm(a, b models.Coordinates) float64 {
	if a == b {
		return 0
	}

	dLat := ToRadians(b.Latitude - a.Latitude)
	dLon := ToRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(ToRadians(a.Latitude))*math.Cos(ToRadians(b.Latitude))*sinLon*sinLon

	// Rounding can push h slightly past 1 for antipodal points.
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
