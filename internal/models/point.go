// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

import (
	"strings"
	"time"
)

// Point validation messages.
const (
	MsgPointIDRequired = "Point ID is required"
	MsgNameRequired    = "Name is required"
	MsgRatingRange     = "Rating must be between 0 and 5"
)

// ContactInfo holds optional contact details for a point.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Metadata tracks record timestamps.
type Metadata struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// PointOfInterest is a single catalog entry.
//
// Tags are lowercase and unique. Use NewPointOfInterest to build one from
// untrusted input so that normalization is applied.
type PointOfInterest struct {
	ID             string            `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Description    string            `json:"description" bson:"description"`
	Coordinates    Coordinates       `json:"coordinates" bson:"coordinates"`
	Category       Category          `json:"category" bson:"category"`
	Rating         float64           `json:"rating" bson:"rating"`
	PriceRange     PriceRange        `json:"price_range,omitempty" bson:"price_range,omitempty"`
	Tags           []string          `json:"tags" bson:"tags"`
	Address        string            `json:"address,omitempty" bson:"address,omitempty"`
	Images         []string          `json:"images,omitempty" bson:"images,omitempty"`
	ContactInfo    *ContactInfo      `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	OperatingHours map[string]string `json:"operating_hours,omitempty" bson:"operating_hours,omitempty"`
	Metadata       Metadata          `json:"metadata" bson:"metadata"`
}

// PrimaryImage returns the first image URL, or "" when the point has none.
func (p *PointOfInterest) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasTag reports whether the point carries tag, ignoring case.
func (p *PointOfInterest) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PointParams is the raw input for NewPointOfInterest.
type PointParams struct {
	ID             string
	Name           string
	Description    string
	Latitude       float64
	Longitude      float64
	Category       Category
	Rating         float64
	PriceRange     PriceRange
	Tags           []string
	Address        string
	Images         []string
	ContactInfo    *ContactInfo
	OperatingHours map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPointOfInterest validates and normalizes params into a point.
//
// Text fields are trimmed and tags are normalized with NormalizeTags. Missing
// timestamps default to the current time; UpdatedAt defaults to CreatedAt.
func NewPointOfInterest(params PointParams) (*PointOfInterest, error) {
	id := strings.TrimSpace(params.ID)
	if id == "" {
		return nil, &FieldError{Field: "id", Message: MsgPointIDRequired}
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, &FieldError{Field: "name", Message: MsgNameRequired}
	}

	if !(params.Rating >= 0 && params.Rating <= 5) {
		return nil, &FieldError{Field: "rating", Message: MsgRatingRange}
	}

	coords, err := NewCoordinates(params.Latitude, params.Longitude)
	if err != nil {
		return nil, err
	}

	created := params.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	updated := params.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	return &PointOfInterest{
		ID:             id,
		Name:           name,
		Description:    strings.TrimSpace(params.Description),
		Coordinates:    coords,
		Category:       Category(strings.ToLower(strings.TrimSpace(string(params.Category)))),
		Rating:         params.Rating,
		PriceRange:     PriceRange(strings.ToLower(strings.TrimSpace(string(params.PriceRange)))),
		Tags:           NormalizeTags(params.Tags),
		Address:        strings.TrimSpace(params.Address),
		Images:         params.Images,
		ContactInfo:    params.ContactInfo,
		OperatingHours: params.OperatingHours,
		Metadata:       Metadata{CreatedAt: created, UpdatedAt: updated},
	}, nil
}

// NormalizeTags lowercases and trims tags, dropping empties and duplicates.
// The first occurrence of each tag keeps its position.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
