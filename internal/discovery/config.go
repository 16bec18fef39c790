// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"fmt"

	"github.com/tomtom215/wayfinder/internal/models"
)

// MaxLimit is the largest page or result size any operation accepts.
const MaxLimit = 100

// Config tunes the engine. Zero values are replaced by DefaultConfig values
// in NewEngine, so a zero radius or limit cannot be configured. The rating
// floor is a pointer because 0 is a meaningful floor.
type Config struct {
	// SearchDefaultLimit is the page size when a search omits limit.
	SearchDefaultLimit int

	// SearchCandidateLimit caps how many points a search pulls from the store
	// before filtering.
	SearchCandidateLimit int

	// RecommendDefaultLimit is the result size when a recommendation omits limit.
	RecommendDefaultLimit int

	// RecommendRadiusKm drops popular points farther than this from the user.
	RecommendRadiusKm float64

	// RecommendMinRating keeps only points rated at least this high.
	// Nil means the default; 0 keeps everything the store returns.
	RecommendMinRating *float64

	// RecommendOverFetch multiplies the limit when requesting popular points
	// so that the proximity gate still leaves enough results.
	RecommendOverFetch int

	// NearbyDefaultRadiusKm applies when a nearby scan omits the radius.
	NearbyDefaultRadiusKm float64

	// NearbyDefaultLimit applies when a nearby scan omits limit.
	NearbyDefaultLimit int

	// NearbyScanLimit caps how many points a nearby scan reads.
	NearbyScanLimit int

	// LookupDefaultLimit applies to ByCategory and Popular.
	LookupDefaultLimit int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		SearchDefaultLimit:    20,
		SearchCandidateLimit:  500,
		RecommendDefaultLimit: 10,
		RecommendRadiusKm:     50,
		RecommendMinRating:    models.Float(4.0),
		RecommendOverFetch:    2,
		NearbyDefaultRadiusKm: 10,
		NearbyDefaultLimit:    20,
		NearbyScanLimit:       100,
		LookupDefaultLimit:    20,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SearchDefaultLimit == 0 {
		c.SearchDefaultLimit = d.SearchDefaultLimit
	}
	if c.SearchCandidateLimit == 0 {
		c.SearchCandidateLimit = d.SearchCandidateLimit
	}
	if c.RecommendDefaultLimit == 0 {
		c.RecommendDefaultLimit = d.RecommendDefaultLimit
	}
	if c.RecommendRadiusKm == 0 {
		c.RecommendRadiusKm = d.RecommendRadiusKm
	}
	if c.RecommendMinRating == nil {
		c.RecommendMinRating = d.RecommendMinRating
	}
	if c.RecommendOverFetch == 0 {
		c.RecommendOverFetch = d.RecommendOverFetch
	}
	if c.NearbyDefaultRadiusKm == 0 {
		c.NearbyDefaultRadiusKm = d.NearbyDefaultRadiusKm
	}
	if c.NearbyDefaultLimit == 0 {
		c.NearbyDefaultLimit = d.NearbyDefaultLimit
	}
	if c.NearbyScanLimit == 0 {
		c.NearbyScanLimit = d.NearbyScanLimit
	}
	if c.LookupDefaultLimit == 0 {
		c.LookupDefaultLimit = d.LookupDefaultLimit
	}
	return c
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"search default limit", c.SearchDefaultLimit},
		{"recommend default limit", c.RecommendDefaultLimit},
		{"nearby default limit", c.NearbyDefaultLimit},
		{"lookup default limit", c.LookupDefaultLimit},
	}
	for _, l := range limits {
		if l.value < 1 || l.value > MaxLimit {
			return fmt.Errorf("%s must be between 1 and %d, got %d", l.name, MaxLimit, l.value)
		}
	}
	if c.SearchCandidateLimit < 1 {
		return fmt.Errorf("search candidate limit must be positive, got %d", c.SearchCandidateLimit)
	}
	if c.NearbyScanLimit < 1 {
		return fmt.Errorf("nearby scan limit must be positive, got %d", c.NearbyScanLimit)
	}
	if c.RecommendOverFetch < 1 {
		return fmt.Errorf("recommend over-fetch factor must be at least 1, got %d", c.RecommendOverFetch)
	}
	if c.RecommendRadiusKm < 0 || c.NearbyDefaultRadiusKm < 0 {
		return fmt.Errorf("radius must be non-negative")
	}
	if r := c.RecommendMinRating; r != nil && (*r < 0 || *r > 5) {
		return fmt.Errorf("recommend min rating must be between 0 and 5, got %v", *r)
	}
	return nil
}
