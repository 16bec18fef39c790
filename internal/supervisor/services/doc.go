// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package services adapts long-running Wayfinder components to suture.Service.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully
    when the supervisor context ends
  - MaintenanceService: runs a task on a fixed interval (BadgerDB value-log
    garbage collection for the favorites store)

The favorites event consumer (events.Consumer) implements suture.Service
itself and is added to the tree directly.

Every service implements fmt.Stringer so suture's event hook can name it.
*/
package services
