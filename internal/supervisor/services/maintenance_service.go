// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaintenanceInterval applies when MaintenanceConfig.Interval is unset.
const DefaultMaintenanceInterval = 10 * time.Minute

// Task is one periodic maintenance job.
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context) error

// Run implements Task.
func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// MaintenanceConfig configures a MaintenanceService.
type MaintenanceConfig struct {
	// Name identifies the service in supervisor events and logs.
	Name string

	// Interval between runs.
	Interval time.Duration

	// Timeout bounds a single run. Zero means Interval.
	Timeout time.Duration

	// RunOnStartup runs the task once before the first tick.
	RunOnStartup bool
}

// MaintenanceService runs a Task on a ticker.
//
// A failed run is logged and retried on the next tick; it never stops the
// service, so a flaky task does not burn through the supervisor's restart
// budget.
type MaintenanceService struct {
	task   Task
	config MaintenanceConfig
	logger zerolog.Logger
}

// NewMaintenanceService creates a maintenance service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewMaintenanceService(task Task, cfg MaintenanceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Name == "" {
		cfg.Name = "maintenance"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultMaintenanceInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	return &MaintenanceService{
		task:   task,
		config: cfg,
		logger: logger.With().Str("service", cfg.Name).Logger(),
	}
}

// Serve implements suture.Service.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().
		Bool("run_on_startup", s.config.RunOnStartup).
		Dur("interval", s.config.Interval).
		Msg("maintenance service starting")

	if s.config.RunOnStartup {
		s.run(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *MaintenanceService) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.task.Run(runCtx); err != nil {
		s.logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("maintenance run failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("maintenance run complete")
}

// String implements fmt.Stringer for suture event logging.
func (s *MaintenanceService) String() string {
	return s.config.Name
}
