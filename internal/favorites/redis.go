// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix namespaces the per-user sorted sets.
const DefaultRedisKeyPrefix = "wayfinder:favorites:"

// toggleScript removes ARGV[1] from the set if present, otherwise adds it with
// score ARGV[2]. It returns 1 when the member is present afterwards.
var toggleScript = redis.NewScript(`
if redis.call("ZREM", KEYS[1], ARGV[1]) == 1 then
  return 0
end
redis.call("ZADD", KEYS[1], ARGV[2], ARGV[1])
return 1
`)

// RedisOptions configures the Redis store.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps one sorted set per user. Members are point IDs scored by
// insertion time in microseconds, so ZRANGE returns them oldest first.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultRedisKeyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}
	return &RedisStore{client: client, prefix: opts.KeyPrefix, now: time.Now}, nil
}

// Close closes the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Ping checks connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Add implements Store.
func (r *RedisStore) Add(ctx context.Context, userID, pointID string) (bool, error) {
	n, err := r.client.ZAddNX(ctx, r.key(userID), redis.Z{
		Score:  float64(r.now().UnixMicro()),
		Member: pointID,
	}).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Remove implements Store.
func (r *RedisStore) Remove(ctx context.Context, userID, pointID string) (bool, error) {
	n, err := r.client.ZRem(ctx, r.key(userID), pointID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Toggle implements Store. The check and the write run server side in one
// script.
func (r *RedisStore) Toggle(ctx context.Context, userID, pointID string) (bool, error) {
	n, err := toggleScript.Run(ctx, r.client, []string{r.key(userID)}, pointID, r.now().UnixMicro()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Contains implements Store.
func (r *RedisStore) Contains(ctx context.Context, userID, pointID string) (bool, error) {
	err := r.client.ZScore(ctx, r.key(userID), pointID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List implements Store.
func (r *RedisStore) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.ZRange(ctx, r.key(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *RedisStore) key(userID string) string {
	return r.prefix + userID
}
