// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultShutdownTimeout is used when HTTPServiceOptions leaves it unset.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the subset of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServiceOptions configures NewHTTPServerService.
type HTTPServiceOptions struct {
	// Name identifies the service in supervisor events. Default "http-server".
	Name string

	// Addr is logged on start.
	Addr string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// HTTPServerService wraps an HTTP server as a supervised service.
//
// ListenAndServe runs in a goroutine. When the supervisor context ends the
// server is shut down with a fresh context bounded by ShutdownTimeout, so
// in-flight requests can finish.
type HTTPServerService struct {
	server          HTTPServer
	name            string
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServerService creates a new HTTP server service wrapper.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPServerService(server HTTPServer, opts HTTPServiceOptions, logger zerolog.Logger) *HTTPServerService {
	if opts.Name == "" {
		opts.Name = "http-server"
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		name:            opts.Name,
		addr:            opts.Addr,
		shutdownTimeout: opts.ShutdownTimeout,
		logger:          logger.With().Str("service", opts.Name).Logger(),
	}
}

// Serve implements suture.Service.
//
// It returns ctx.Err() after a graceful shutdown and a wrapped error when the
// server fails, which makes suture restart it.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	h.logger.Info().Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server shutting down")

		// The supervisor context is already done; shutdown needs its own.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture event logging.
func (h *HTTPServerService) String() string {
	return h.name
}
