// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/logging"
)

// Backend names.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendNATS   = "nats"
)

// NATSOptions configures the NATS transport.
type NATSOptions struct {
	// URL of an external server. Ignored when Embedded is set.
	URL string

	// Embedded starts an in-process server on Host:Port.
	Embedded bool
	Host     string
	Port     int
}

// Options selects the transport.
type Options struct {
	Backend string
	NATS    NATSOptions
}

// Transport pairs a publisher with a subscriber on the same broker.
type Transport struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber

	backend string
	server  *EmbeddedServer
}

// Open builds the transport for opts.Backend.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(opts Options, logger zerolog.Logger) (*Transport, error) {
	adapter := logging.NewWatermillAdapter(logging.Component(logger, "events"))

	switch opts.Backend {
	case BackendMemory:
		return NewMemoryTransport(adapter), nil
	case BackendNATS:
		return NewNATSTransport(opts.NATS, adapter)
	case "", BackendNone:
		return nil, errors.New("events backend is disabled")
	default:
		return nil, fmt.Errorf("unknown events backend %q", opts.Backend)
	}
}

// NewMemoryTransport returns an in-process gochannel transport. Messages
// published while nobody is subscribed are dropped.
func NewMemoryTransport(logger watermill.LoggerAdapter) *Transport {
	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
	return &Transport{Publisher: ps, Subscriber: ps, backend: BackendMemory}
}

// NewNATSTransport connects a publisher and subscriber to NATS core, starting
// an embedded server first when requested.
func NewNATSTransport(opts NATSOptions, logger watermill.LoggerAdapter) (*Transport, error) {
	t := &Transport{backend: BackendNATS}

	url := opts.URL
	if opts.Embedded {
		srv, err := NewEmbeddedServer(opts.Host, opts.Port)
		if err != nil {
			return nil, err
		}
		t.server = srv
		url = srv.ClientURL()
	}
	if url == "" {
		url = natsgo.DefaultURL
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(10),
		natsgo.ReconnectWait(2 * time.Second),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
		natsgo.ErrorHandler(func(_ *natsgo.Conn, sub *natsgo.Subscription, err error) {
			fields := watermill.LogFields{}
			if sub != nil {
				fields["subject"] = sub.Subject
			}
			logger.Error("NATS error", err, fields)
		}),
	}
	core := wmNats.JetStreamConfig{Disabled: true}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   core,
	}, logger)
	if err != nil {
		t.shutdownServer()
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		SubscribersCount: 1,
		CloseTimeout:     10 * time.Second,
		AckWaitTimeout:   30 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        core,
	}, logger)
	if err != nil {
		_ = pub.Close() //nolint:errcheck // cleanup path
		t.shutdownServer()
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}

	t.Publisher = pub
	t.Subscriber = sub
	return t, nil
}

// Backend returns the transport name.
func (t *Transport) Backend() string { return t.backend }

// Embedded returns the embedded server, or nil.
func (t *Transport) Embedded() *EmbeddedServer { return t.server }

// Close closes the subscriber, the publisher, and then any embedded server.
func (t *Transport) Close(ctx context.Context) error {
	var errs []error
	if t.Subscriber != nil {
		if err := t.Subscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close subscriber: %w", err))
		}
	}
	// gochannel uses one value for both roles.
	if t.Publisher != nil && t.backend != BackendMemory {
		if err := t.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if t.server != nil {
		if err := t.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown NATS server: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (t *Transport) shutdownServer() {
	if t.server != nil {
		_ = t.server.Shutdown(context.Background()) //nolint:errcheck // cleanup path
	}
}
