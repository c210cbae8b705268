package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type expenseRow struct {
	ID     uint `gorm:"primaryKey"`
	Amount float64
}

func (expenseRow) TableName() string { return "expenses" }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&expenseRow{}))
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: false}, zap.NewNop()))
	assert.Nil(t, db.Callback().Query().Get("ledger_timing:after_query"))
}

func TestRegisterDBTracing_Enabled(t *testing.T) {
	recorder := useRecorder(t)
	db := setupTestDB(t)

	err := RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBSystem: "sqlite"}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, db.Callback().Query().Get("ledger_timing:after_query"))

	ctx, parent := otel.Tracer("test").Start(context.Background(), "ledger.get_payables")
	var total float64
	require.NoError(t, db.WithContext(ctx).Table("expenses").Select("COALESCE(SUM(amount), 0)").Row().Scan(&total))
	parent.End()

	assert.GreaterOrEqual(t, len(recorder.Ended()), 2)
}

func TestSlowQueryCallback(t *testing.T) {
	recorder := useRecorder(t)
	db := setupTestDB(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "aggregate")
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now().Add(-time.Second))

	tx := db.WithContext(ctx)
	tx.Statement.Table = "expenses"
	slowQueryCallback(100 * time.Millisecond)(tx)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0].Attributes())
	assert.True(t, attrs["db.slow_query"].AsBool())
	assert.Equal(t, "expenses", attrs["db.sql.table"].AsString())
	assert.GreaterOrEqual(t, attrs["db.query_duration_ms"].AsInt64(), int64(1000))
}
