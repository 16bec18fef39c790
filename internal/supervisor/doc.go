// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package supervisor runs Wayfinder's long-lived services under a suture v4
supervisor tree.

# Layout

	wayfinder
	├── storage-layer
	│   └── MaintenanceService "favorites-gc" (badger backend only)
	├── events-layer
	│   └── events.Consumer (when events are enabled)
	└── api-layer
	    └── HTTPServerService

Each layer is its own suture.Supervisor with the same failure budget, so
restarts in one layer do not count against another.

# Usage

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(srv, opts, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Serve returns once every service has stopped or the shutdown timeout
expires; UnstoppedServiceReport names the stragglers.

# Failure handling

A service whose Serve returns is restarted. After FailureThreshold failures
(decaying at FailureDecay per second) the supervisor waits FailureBackoff
before restarting again. All events go through sutureslog to the process
logger.
*/
package supervisor
