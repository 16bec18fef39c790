// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package testinfra starts backing services in Docker for integration tests.
//
// It uses testcontainers-go and is compiled only with the integration build tag:
//
//	go test -tags integration ./internal/catalog/... ./internal/favorites/...
//
// Tests call StartMongo or StartRedis, which skip when Docker is unavailable
// and terminate the container on cleanup:
//
//	func TestMongoStore(t *testing.T) {
//	    uri := testinfra.StartMongo(t)
//	    store, err := catalog.NewMongoStore(ctx, catalog.MongoOptions{URI: uri}, zerolog.Nop())
//	    // ...
//	}
//
// First runs download the images; later runs use the local cache.
package testinfra
