package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a nil meter is supplied.
var ErrMeterNil = errors.New("telemetry: meter is nil")

// LedgerMetrics records request counts, latency and cache effectiveness of
// ledger operations. A nil *LedgerMetrics is valid and records nothing.
type LedgerMetrics struct {
	operations *Counter
	duration   *Histogram
	cache      *Counter
}

// NewLedgerMetrics creates the ledger instruments on meter.
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	operations, err := NewCounter(meter, "ledger_operation_total", "Ledger operations by outcome", "{operation}")
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "ledger_operation_duration_seconds",
		Description: "Ledger operation latency in seconds",
		Unit:        "s",
		Boundaries:  LedgerDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	cache, err := NewCounter(meter, "ledger_cache_lookup_total", "Summary cache lookups by result", "{lookup}")
	if err != nil {
		return nil, err
	}
	return &LedgerMetrics{operations: operations, duration: duration, cache: cache}, nil
}

// RecordOperation records one finished ledger operation.
func (m *LedgerMetrics) RecordOperation(ctx context.Context, operation, view string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.operations.Inc(ctx, AttrOperation.String(operation), AttrView.String(view), AttrOutcome.String(outcome))
	m.duration.RecordDuration(ctx, elapsed, AttrOperation.String(operation))
}

// RecordCacheLookup records a summary cache hit or miss.
func (m *LedgerMetrics) RecordCacheLookup(ctx context.Context, operation string, hit bool) {
	if m == nil {
		return
	}
	m.cache.Inc(ctx, AttrOperation.String(operation), AttrCacheHit.Bool(hit))
}
