// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package events publishes and consumes domain events over Watermill.

Two transports are available:

  - memory: Watermill gochannel, in-process only
  - nats: watermill-nats over core NATS (JetStream disabled), optionally
    against an embedded nats-server for single-node deployments

Publisher serializes FavoriteChanged events as JSON and records
events_published_total. Consumer is a suture service that subscribes to the
favorites topic, hands each event to a handler, and acks it:

	transport, err := events.Open(events.Options{Backend: "nats", NATS: natsOpts}, logger)
	pub := events.NewPublisher(transport.Publisher, events.DefaultTopic, logger)
	tree.AddMessagingService(events.NewConsumer(transport.Subscriber, events.DefaultTopic, nil, logger))

Publishing is fire-and-forget from the caller's perspective: favorites log
publish errors and never fail because of them.
*/
package events
