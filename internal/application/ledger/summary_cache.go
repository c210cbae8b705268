package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hostel/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SummaryCache stores serialized summaries by key
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type summaryCache struct {
	store SummaryCache
	ttl   time.Duration
}

// cacheKey derives a key from the operation and the resolved scope. Two requests
// that resolve to the same scope share an entry.
func cacheKey(op string, meta Meta) (string, error) {
	scope, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	return "ledger:" + op + ":" + string(scope), nil
}

// cached is a read-through lookup around compute. Cache failures are logged
// and never fail the request.
func cached[T any](ctx context.Context, s *Service, op string, meta Meta, compute func() (*T, error)) (*T, error) {
	if s.cache == nil {
		return compute()
	}
	log := logger.WithTraceContext(ctx, s.logger)

	key, err := cacheKey(op, meta)
	if err != nil {
		log.Warn("Failed to build summary cache key", zap.String("operation", op), zap.Error(err))
		return compute()
	}

	raw, hit, err := s.cache.store.Get(ctx, key)
	if err != nil {
		log.Warn("Summary cache read failed", zap.String("operation", op), zap.Error(err))
	}
	if hit {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			s.metrics.RecordCacheLookup(ctx, op, true)
			return &value, nil
		}
		log.Warn("Discarding undecodable summary cache entry", zap.String("key", key))
	}
	s.metrics.RecordCacheLookup(ctx, op, false)

	value, err := compute()
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(value); err == nil {
		if err := s.cache.store.Set(ctx, key, encoded, s.cache.ttl); err != nil {
			log.Warn("Summary cache write failed", zap.String("operation", op), zap.Error(err))
		}
	}
	return value, nil
}
