// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/metrics"
)

// Handler processes one decoded event. A non-nil error nacks the message.
type Handler func(ctx context.Context, event *FavoriteChanged) error

// Consumer subscribes to a topic and dispatches FavoriteChanged events. It
// implements suture.Service.
type Consumer struct {
	subscriber message.Subscriber
	topic      string
	handler    Handler
	logger     zerolog.Logger

	ready     chan struct{}
	readyOnce sync.Once

	handled  atomic.Int64
	rejected atomic.Int64
}

// NewConsumer consumes topic (DefaultTopic when empty). A nil handler logs
// each event.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewConsumer(subscriber message.Subscriber, topic string, handler Handler, logger zerolog.Logger) *Consumer {
	if topic == "" {
		topic = DefaultTopic
	}
	c := &Consumer{
		subscriber: subscriber,
		topic:      topic,
		logger:     logger.With().Str("component", "events").Str("topic", topic).Logger(),
		ready:      make(chan struct{}),
	}
	if handler == nil {
		handler = c.logEvent
	}
	c.handler = handler
	return c
}

// Ready is closed once the first subscription is established.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// Handled returns the number of acked events.
func (c *Consumer) Handled() int64 { return c.handled.Load() }

// Rejected returns the number of undecodable payloads that were dropped.
func (c *Consumer) Rejected() int64 { return c.rejected.Load() }

// Serve implements suture.Service. It returns ctx.Err() on shutdown and an
// error if the subscription closes underneath it, so the supervisor restarts it.
func (c *Consumer) Serve(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.topic, err)
	}
	c.readyOnce.Do(func() { close(c.ready) })
	c.logger.Info().Msg("Event consumer subscribed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errors.New("subscription closed")
			}
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg *message.Message) {
	event, err := DecodeFavoriteChanged(msg.Payload)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		c.rejected.Add(1)
		c.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable event")
		msg.Ack()
		return
	}

	if err := c.handler(ctx, event); err != nil {
		c.logger.Error().Err(err).Str("event_id", event.EventID).Msg("Event handler failed")
		msg.Nack()
		return
	}

	metrics.RecordEventConsumed(c.topic)
	c.handled.Add(1)
	msg.Ack()
}

func (c *Consumer) logEvent(_ context.Context, event *FavoriteChanged) error {
	c.logger.Info().
		Str("event_id", event.EventID).
		Str("user_id", event.UserID).
		Str("point_id", event.PointID).
		Str("action", event.Action).
		Bool("favorite", event.Favorite).
		Time("occurred_at", event.Timestamp).
		Msg("Favorite changed")
	return nil
}

// String implements fmt.Stringer for suture logs.
func (c *Consumer) String() string {
	return "events-consumer"
}
