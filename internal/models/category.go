// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

import (
	"fmt"
	"strings"
)

// Category classifies a point of interest.
type Category string

// Known categories. Both the plural and the singular historical sets are
// accepted because catalog data uses either.
const (
	CategoryAttractions   Category = "attractions"
	CategoryRestaurants   Category = "restaurants"
	CategoryHotels        Category = "hotels"
	CategoryCulture       Category = "culture"
	CategoryNature        Category = "nature"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategorySports        Category = "sports"
	CategoryCultural      Category = "cultural"
	CategoryHistoric      Category = "historic"
	CategoryMuseum        Category = "museum"
	CategoryMonument      Category = "monument"
	CategoryRestaurant    Category = "restaurant"
)

var allCategories = []Category{
	CategoryAttractions,
	CategoryRestaurants,
	CategoryHotels,
	CategoryCulture,
	CategoryNature,
	CategoryEntertainment,
	CategoryShopping,
	CategorySports,
	CategoryCultural,
	CategoryHistoric,
	CategoryMuseum,
	CategoryMonument,
	CategoryRestaurant,
}

// Categories returns every known category.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// PriceRange is an ordered price bucket.
type PriceRange string

// Known price ranges. Moderate and medium share a rank but remain distinct
// values: a price filter for one does not match the other.
const (
	PriceFree     PriceRange = "free"
	PriceLow      PriceRange = "low"
	PriceModerate PriceRange = "moderate"
	PriceMedium   PriceRange = "medium"
	PriceHigh     PriceRange = "high"
	PriceLuxury   PriceRange = "luxury"
)

var priceRanks = map[PriceRange]int{
	PriceFree:     0,
	PriceLow:      1,
	PriceModerate: 2,
	PriceMedium:   2,
	PriceHigh:     3,
	PriceLuxury:   4,
}

// Rank returns the ordinal of p, or -1 for an unknown value.
func (p PriceRange) Rank() int {
	if r, ok := priceRanks[p]; ok {
		return r
	}
	return -1
}

// Valid reports whether p is a known price range.
func (p PriceRange) Valid() bool {
	return p.Rank() >= 0
}

// ParsePriceRange parses a price range case-insensitively.
func ParsePriceRange(s string) (PriceRange, error) {
	p := PriceRange(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown price range %q", s)
	}
	return p, nil
}
