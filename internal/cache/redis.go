package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// Redis is an ApplicationCache backed by go-redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ApplicationCache = (*Redis)(nil)

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewRedis(client, ttl), nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get reads and decodes the listing at key. Any failure reports a miss, and
// an entry that does not decode is deleted.
func (r *Redis) Get(ctx context.Context, key string) ([]*models.Application, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
		return nil, false
	}

	var apps []*models.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		slog.Warn("Cache entry is corrupt, dropping it", "key", key, "error", err)
		r.Invalidate(ctx, key)
		return nil, false
	}

	return apps, true
}

// Set encodes apps as JSON and stores them under key with the cache TTL.
// A failed write is logged and otherwise ignored.
func (r *Redis) Set(ctx context.Context, key string, apps []*models.Application) {
	if apps == nil {
		apps = []*models.Application{}
	}
	data, err := json.Marshal(apps)
	if err != nil {
		slog.Warn("Cache encode failed", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}
}

// Invalidate deletes keys in a single DEL.
func (r *Redis) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}
