// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package api exposes the discovery engine and favorites service over HTTP.

# Routes

All JSON routes live under /api/v1:

	GET    /points/search                      Search (paginated)
	GET    /points/recommendations             Recommend
	GET    /points/nearby                      Nearby
	GET    /points/popular                     Popular
	GET    /points/categories/{category}       ByCategory
	GET    /points/{id}                        Point
	GET    /users/{userID}/favorites           resolved favorite points
	GET    /users/{userID}/favorites/ids       favorite point IDs
	PUT    /users/{userID}/favorites/{pointID} add
	DELETE /users/{userID}/favorites/{pointID} remove
	POST   /users/{userID}/favorites/{pointID}/toggle
	GET    /health, /health/live, /health/ready, /health/performance

Prometheus metrics are served on /metrics outside the API prefix.

# Response Envelope

Every JSON response uses APIResponse:

	{"success":true,"data":...,"meta":{"request_id":"...","timestamp":"...","duration_ms":3}}
	{"success":false,"error":{"code":"VALIDATION_FAILED","message":"Limit must be between 1 and 100"},"meta":{...}}

# Error Mapping

  - *discovery.ValidationError: 400 VALIDATION_FAILED with the validation message
  - malformed query parameters: 400 BAD_REQUEST
  - *discovery.RepositoryError: 503 SERVICE_UNAVAILABLE with the generic operation
    message; the store error is logged with the request ID and never returned
  - Point lookups that find nothing: 404 NOT_FOUND
*/
package api
