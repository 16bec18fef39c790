// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the process. It caches struct
// metadata and is safe for concurrent use. Two custom tags are registered:
//
//   - category: value must be a known models.Category
//   - price_range: value must be a known models.PriceRange
//
// Errors are returned as *RequestValidationError in struct declaration order.
// Callers that need fixed wording per field pass an override map:
//
//	msgs := map[string]string{"Limit": "Limit must be between 1 and 100"}
//	if verr := validation.ValidateStructWithMessages(&q, msgs); verr != nil {
//	    first := verr.First()
//	    ...
//	}
package validation
