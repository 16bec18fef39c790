// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewMaintenanceService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewMaintenanceService(TaskFunc(func(context.Context) error { return nil }), MaintenanceConfig{}, zerolog.Nop())
	if svc.String() != "maintenance" {
		t.Errorf("String() = %q", svc.String())
	}
	if svc.config.Interval != DefaultMaintenanceInterval {
		t.Errorf("Interval = %v", svc.config.Interval)
	}
	if svc.config.Timeout != DefaultMaintenanceInterval {
		t.Errorf("Timeout = %v, want Interval", svc.config.Timeout)
	}
}

func TestMaintenanceService_RunOnStartup(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{}, 1)
	task := TaskFunc(func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	svc := NewMaintenanceService(task, MaintenanceConfig{Name: "gc", Interval: time.Hour, RunOnStartup: true}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run on startup")
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestMaintenanceService_KeepsRunningAfterFailure(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	task := TaskFunc(func(context.Context) error {
		runs.Add(1)
		return errors.New("gc failed")
	})
	svc := NewMaintenanceService(task, MaintenanceConfig{Interval: 5 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("runs = %d, want >= 3", runs.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestMaintenanceService_RunHasTimeout(t *testing.T) {
	t.Parallel()

	gotDeadline := make(chan bool, 1)
	task := TaskFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		gotDeadline <- ok
		return nil
	})
	svc := NewMaintenanceService(task, MaintenanceConfig{Interval: time.Hour, Timeout: time.Minute}, zerolog.Nop())
	svc.run(context.Background())

	if !<-gotDeadline {
		t.Error("task context has no deadline")
	}
}
