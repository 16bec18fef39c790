// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// User-facing validation messages.
const (
	MsgLimitRange       = "Limit must be between 1 and 100"
	MsgOffsetNegative   = "Offset must be non-negative"
	MsgMinRatingRange   = "Minimum rating must be between 0 and 5"
	MsgMaxDistanceRange = "Maximum distance must be non-negative"
	MsgLocationForRange = "Location is required when specifying maximum distance"
	MsgLocationRequired = "Location is required"
	MsgRadiusNegative   = "Radius must be non-negative"
	MsgCategoryUnknown  = "Category must be a known category"
)

var coordinateMessages = map[string]string{
	"Latitude":  models.MsgLatitudeRange,
	"Longitude": models.MsgLongitudeRange,
}

var searchMessages = withCoordinates(map[string]string{
	"Limit":       MsgLimitRange,
	"Offset":      MsgOffsetNegative,
	"MinRating":   MsgMinRatingRange,
	"MaxDistance": MsgMaxDistanceRange,
	"Location":    MsgLocationForRange,
})

var recommendMessages = withCoordinates(map[string]string{
	"Limit": MsgLimitRange,
})

var nearbyMessages = withCoordinates(map[string]string{
	"Location": MsgLocationRequired,
	"RadiusKm": MsgRadiusNegative,
	"Limit":    MsgLimitRange,
})

func withCoordinates(m map[string]string) map[string]string {
	for k, v := range coordinateMessages {
		m[k] = v
	}
	return m
}

// validateRequest returns the first field error of s as a *ValidationError.
func validateRequest(s interface{}, messages map[string]string) error {
	verr := validation.ValidateStructWithMessages(s, messages)
	if verr == nil {
		return nil
	}
	first := verr.First()
	if first == nil {
		return &ValidationError{Message: verr.Error()}
	}
	return &ValidationError{Field: first.Field(), Message: first.Error()}
}

// validateLimit checks an optional limit outside of a request struct.
func validateLimit(limit *int) error {
	if limit != nil && (*limit < 1 || *limit > MaxLimit) {
		return &ValidationError{Field: "Limit", Message: MsgLimitRange}
	}
	return nil
}
