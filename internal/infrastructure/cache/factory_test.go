package cache

import (
	"context"
	"testing"
	"time"

	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// unreachableRedis points at a port nothing listens on
var unreachableRedis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

func TestNewSummaryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled returns nil", func(t *testing.T) {
		cfg := &config.Config{Cache: config.CacheConfig{Enabled: false}}
		assert.Nil(t, NewSummaryStore(ctx, cfg, zaptest.NewLogger(t)))
	})

	t.Run("memory backend", func(t *testing.T) {
		cfg := &config.Config{Cache: config.CacheConfig{Enabled: true, Backend: "memory", TTL: time.Minute}}
		store := NewSummaryStore(ctx, cfg, zaptest.NewLogger(t))
		defer store.Close()
		assert.IsType(t, &InMemorySummaryCache{}, store)
	})

	t.Run("unreachable redis falls back to memory", func(t *testing.T) {
		cfg := &config.Config{
			Redis: unreachableRedis,
			Cache: config.CacheConfig{Enabled: true, Backend: "redis", TTL: time.Minute, KeyPrefix: "ledger:"},
		}
		store := NewSummaryStore(ctx, cfg, zaptest.NewLogger(t))
		defer store.Close()
		assert.IsType(t, &InMemorySummaryCache{}, store)
	})
}

func TestRedisSummaryCache_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewRedisSummaryCache(ctx, unreachableRedis, "ledger:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")

	client := redis.NewClient(&redis.Options{Addr: unreachableRedis.Addr(), MaxRetries: -1})
	c := NewRedisSummaryCacheWithClient(client, "ledger:")
	defer c.Close()

	_, ok, err := c.Get(ctx, "summary")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to read summary cache")

	err = c.Set(ctx, "summary", []byte("{}"), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write summary cache")
}
