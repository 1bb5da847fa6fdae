// Package cache provides Redis-backed caching infrastructure.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"roomstock/internal/domain/warning"
)

// Compile-time check that WarningCache implements warning.Cache.
var _ warning.Cache = (*WarningCache)(nil)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// DefaultConfig returns local-development defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     "localhost:6379",
		PoolSize: 100,
	}
}

// WarningCache tracks the last-sent time of low-stock warnings in Redis,
// so repeated dispatcher runs do not resend within the resend interval.
// It also exposes a short-lived lock for callers that need an atomic
// claim instead of the read-then-write pattern.
type WarningCache struct {
	client *redis.Client
	locker *redislock.Client
}

// NewWarningCache connects to Redis and verifies the connection.
func NewWarningCache(ctx context.Context, cfg Config) (*WarningCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &WarningCache{
		client: client,
		locker: redislock.New(client),
	}, nil
}

// NewWarningCacheFromClient wraps an existing client (tests, shared pools).
func NewWarningCacheFromClient(client *redis.Client) *WarningCache {
	return &WarningCache{
		client: client,
		locker: redislock.New(client),
	}
}

// GetLastSent returns when a warning for the key was last sent. The second
// result is false when the key is unknown or already expired.
func (c *WarningCache) GetLastSent(ctx context.Context, key string) (time.Time, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get %s: %w", key, err)
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// A malformed value is treated as unseen rather than wedging the
		// dispatcher on that key forever.
		return time.Time{}, false, nil
	}

	return at, true, nil
}

// SetLastSent records the send time with the given TTL.
func (c *WarningCache) SetLastSent(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, at.UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// TryAcquire claims the key atomically for ttl. Returns false when another
// dispatcher run already holds it.
func (c *WarningCache) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	_, err := c.locker.Obtain(ctx, "lock:"+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return true, nil
}

// Close releases the underlying Redis connection pool.
func (c *WarningCache) Close() error {
	return c.client.Close()
}
