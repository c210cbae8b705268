package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache stores encoded ledger summaries in Redis so that
// multiple service instances share cached results
type RedisSummaryCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSummaryCache connects to Redis and verifies the connection
func NewRedisSummaryCache(ctx context.Context, cfg config.RedisConfig, keyPrefix string) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSummaryCacheWithClient(client, keyPrefix), nil
}

// NewRedisSummaryCacheWithClient creates a cache around an existing client
func NewRedisSummaryCacheWithClient(client *redis.Client, keyPrefix string) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, keyPrefix: keyPrefix}
}

// Get returns the cached value for key; ok is false on a miss
func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	return value, true, nil
}

// Set stores value under key for ttl
func (c *RedisSummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
