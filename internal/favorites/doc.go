// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package favorites manages per-user favorite points.
//
// Service.Execute applies an add, remove or toggle action. Add and remove are
// idempotent; toggle flips the current state. Every state change emits a
// FavoriteChanged event when a publisher is configured. Publish failures are
// logged and do not fail the operation.
//
// Stores keep favorites in insertion order:
//
//   - MemoryStore: process-local
//   - BadgerStore: one JSON list per user under "favorites:<user>"
//   - RedisStore: one sorted set per user scored by insertion time
package favorites
