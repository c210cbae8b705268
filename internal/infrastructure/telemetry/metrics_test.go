package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

func newManualMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), MetricsConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, mp.Meter("ledger"))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestLedgerMetrics(t *testing.T) {
	reader, provider := newManualMeter(t)
	m, err := NewLedgerMetrics(provider.Meter("ledger"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordOperation(ctx, "get_payables", "bills", 20*time.Millisecond, nil)
	m.RecordOperation(ctx, "get_payables", "bills", 30*time.Millisecond, errors.New("boom"))
	m.RecordCacheLookup(ctx, "get_payables_summary", true)

	metrics := collect(t, reader)

	ops, ok := metrics["ledger_operation_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, ops.DataPoints, 2, "success and error outcomes are separate series")

	hist, ok := metrics["ledger_operation_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)

	lookups, ok := metrics["ledger_cache_lookup_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, lookups.DataPoints, 1)
	assert.Equal(t, int64(1), lookups.DataPoints[0].Value)
}

func TestLedgerMetrics_NilIsNoop(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "get_receivables", "all", time.Millisecond, nil)
		m.RecordCacheLookup(context.Background(), "get_receivables", false)
	})

	_, err := NewLedgerMetrics(nil)
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestRegisterPoolMetrics(t *testing.T) {
	reader, provider := newManualMeter(t)
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(3)

	reg, err := RegisterPoolMetrics(provider.Meter("db"), sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Unregister() })

	metrics := collect(t, reader)

	maxOpen, ok := metrics["db_pool_connections_max"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, maxOpen.DataPoints, 1)
	assert.Equal(t, int64(3), maxOpen.DataPoints[0].Value)

	conns, ok := metrics["db_pool_connections"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	assert.Len(t, conns.DataPoints, 3)
}
