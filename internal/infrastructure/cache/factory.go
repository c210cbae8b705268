package cache

import (
	"context"
	"io"
	"time"

	"github.com/hostel/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SummaryStore is the cache surface shared by both backends
type SummaryStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	io.Closer
}

// NewSummaryStore builds the configured summary cache. It returns nil when
// caching is disabled. A Redis backend that cannot be reached falls back to
// the in-memory cache with a warning.
func NewSummaryStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) SummaryStore {
	if !cfg.Cache.Enabled {
		logger.Info("Summary cache disabled")
		return nil
	}

	if cfg.Cache.Backend == "redis" {
		store, err := NewRedisSummaryCache(ctx, cfg.Redis, cfg.Cache.KeyPrefix)
		if err == nil {
			logger.Info("Using Redis summary cache",
				zap.String("addr", cfg.Redis.Addr()),
				zap.Duration("ttl", cfg.Cache.TTL),
			)
			return store
		}
		logger.Warn("Redis unavailable, falling back to in-memory summary cache. "+
			"Cached summaries will not be shared across instances.",
			zap.Error(err),
		)
	}

	logger.Info("Using in-memory summary cache", zap.Duration("ttl", cfg.Cache.TTL))
	return NewInMemorySummaryCache(cfg.Cache.TTL)
}

var (
	_ SummaryStore = (*RedisSummaryCache)(nil)
	_ SummaryStore = (*InMemorySummaryCache)(nil)
)
