// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/metrics"
)

// ErrPublisherClosed is returned after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher sends domain events to a Watermill publisher.
type Publisher struct {
	publisher message.Publisher
	topic     string
	logger    zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher publishes to topic, or DefaultTopic when topic is empty.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewPublisher(publisher message.Publisher, topic string, logger zerolog.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger.With().Str("component", "events").Str("topic", topic).Logger(),
	}
}

// Topic returns the destination topic.
func (p *Publisher) Topic() string { return p.topic }

// PublishFavoriteChanged serializes and publishes event. The event ID is the
// Watermill message UUID.
func (p *Publisher) PublishFavoriteChanged(ctx context.Context, event FavoriteChanged) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := event.Encode()
	if err != nil {
		metrics.RecordEventPublished(p.topic, err)
		return err
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set("user_id", event.UserID)
	msg.Metadata.Set("action", event.Action)
	msg.Metadata.Set("favorite", strconv.FormatBool(event.Favorite))
	msg.SetContext(ctx)

	err = p.publisher.Publish(p.topic, msg)
	metrics.RecordEventPublished(p.topic, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", p.topic, err)
	}

	p.logger.Debug().Str("event_id", event.EventID).Str("user_id", event.UserID).Str("point_id", event.PointID).Msg("Event published")
	return nil
}

// Close marks the publisher closed. The underlying transport is closed by
// its owner.
func (p *Publisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}
