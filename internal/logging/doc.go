// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package logging provides centralized zerolog-based structured logging for Wayfinder.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once at startup (JSON or console)
//   - Context helpers that carry request and correlation IDs through a request
//   - Component loggers tagged with a "component" field
//   - An slog.Handler adapter for the suture supervisor event hook
//   - A watermill.LoggerAdapter for the event publisher and subscriber
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("backend", "duckdb").Msg("Catalog opened")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Recommendation lookup failed")
//
// # Components
//
// Packages that own a long-lived component take a zerolog.Logger in their
// constructor and tag it with Component. Tests pass zerolog.Nop().
//
// # Configuration
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
package logging
