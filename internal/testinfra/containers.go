// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMongoImage is the MongoDB image used by integration tests.
	DefaultMongoImage = "mongo:7.0"

	// DefaultRedisImage is the Redis image used by integration tests.
	DefaultRedisImage = "redis:7-alpine"

	defaultStartTimeout = 90 * time.Second
)

// SkipIfNoDocker skips the test if Docker is not available.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if the Docker daemon is running and accessible.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// CleanupContainer terminates container and logs any error.
func CleanupContainer(t *testing.T, ctx context.Context, container testcontainers.Container) {
	t.Helper()

	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// ServiceContainer is a started container with its reachable address.
type ServiceContainer struct {
	testcontainers.Container

	// Addr is host:port of the mapped service port.
	Addr string
}

// NewMongoContainer starts MongoDB and returns it with a mongodb:// URI.
func NewMongoContainer(ctx context.Context) (*ServiceContainer, string, error) {
	c, err := startService(ctx, DefaultMongoImage, "27017/tcp", wait.ForLog("Waiting for connections"))
	if err != nil {
		return nil, "", fmt.Errorf("create mongo container: %w", err)
	}
	return c, "mongodb://" + c.Addr, nil
}

// NewRedisContainer starts Redis and returns it. Use Addr with go-redis.
func NewRedisContainer(ctx context.Context) (*ServiceContainer, error) {
	c, err := startService(ctx, DefaultRedisImage, "6379/tcp", wait.ForLog("Ready to accept connections"))
	if err != nil {
		return nil, fmt.Errorf("create redis container: %w", err)
	}
	return c, nil
}

// StartMongo is the test helper form of NewMongoContainer. It skips without
// Docker and registers cleanup.
func StartMongo(t *testing.T) string {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	c, uri, err := NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("start mongo: %v", err)
	}
	t.Cleanup(func() { CleanupContainer(t, ctx, c) })
	return uri
}

// StartRedis is the test helper form of NewRedisContainer.
func StartRedis(t *testing.T) string {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	c, err := NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	t.Cleanup(func() { CleanupContainer(t, ctx, c) })
	return c.Addr
}

func startService(ctx context.Context, image string, port nat.Port, ready wait.Strategy) (*ServiceContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{string(port)},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(port),
			ready,
		).WithStartupTimeout(defaultStartTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &ServiceContainer{Container: container, Addr: fmt.Sprintf("%s:%s", host, mapped.Port())}, nil
}
