package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap/zaptest"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	tp, err := NewTracerProvider(ctx, Config{Enabled: false, ServiceName: "hostel-ledger"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("ledger"))
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{ratio: 1, expected: sdktrace.AlwaysSample().Description()},
		{ratio: 1.5, expected: sdktrace.AlwaysSample().Description()},
		{ratio: 0, expected: sdktrace.NeverSample().Description()},
		{ratio: 0.25, expected: sdktrace.TraceIDRatioBased(0.25).Description()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, samplerFor(tt.ratio).Description())
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("hostel-ledger")
	require.NoError(t, err)

	var name string
	for _, attr := range res.Attributes() {
		if attr.Key == "service.name" {
			name = attr.Value.AsString()
		}
	}
	assert.Equal(t, "hostel-ledger", name)
}
