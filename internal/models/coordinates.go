// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

import "fmt"

// Coordinate range messages.
const (
	MsgLatitudeRange  = "Latitude must be between -90 and 90"
	MsgLongitudeRange = "Longitude must be between -180 and 180"
)

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"gte=-180,lte=180"`
}

// NewCoordinates returns validated coordinates.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// Validate reports whether both components are in range.
// NaN values fail both comparisons and are rejected.
func (c Coordinates) Validate() error {
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return &FieldError{Field: "latitude", Message: MsgLatitudeRange}
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return &FieldError{Field: "longitude", Message: MsgLongitudeRange}
	}
	return nil
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}

// FieldError reports an invalid value for a single model field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}
