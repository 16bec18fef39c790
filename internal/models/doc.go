// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package models defines the data structures shared by the Wayfinder packages.

Key Components:

  - Coordinates: validated latitude/longitude pair
  - PointOfInterest: catalog entry with category, rating, price range and tags
  - Category and PriceRange: closed enumerations with parsing helpers
  - SearchQuery, RecommendationParams, NearbyParams: discovery request inputs
  - SearchResult: paginated search output

Optional request fields are pointers. A nil pointer means "not specified",
so a zero value such as a limit of 0 is still validated and rejected.

Validation tags on the request types are evaluated by the validation package
(go-playground/validator). Field order in the structs is significant: errors
are reported in declaration order and the first one wins.
*/
package models
