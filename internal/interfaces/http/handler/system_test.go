package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/hostel/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeDB struct {
	pingErr  error
	statsErr error
	stats    persistence.ConnectionStats
	bounded  bool
}

func (f *fakeDB) Ping(ctx context.Context) error {
	_, f.bounded = ctx.Deadline()
	return f.pingErr
}

func (f *fakeDB) Stats() (persistence.ConnectionStats, error) {
	return f.stats, f.statsErr
}

func runHealth(h *SystemHandler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	h.Health(c)
	return w
}

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler(&fakeDB{}, "1.2.0", zap.NewNop())
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_Health(t *testing.T) {
	db := &fakeDB{stats: persistence.ConnectionStats{MaxOpenConnections: 25, OpenConnections: 3, Idle: 2, InUse: 1}}
	w := runHealth(NewSystemHandler(db, "1.2.0", zap.NewNop()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, db.bounded, "ping runs under a timeout")
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.2.0", data["version"])
	assert.NotEmpty(t, data["goVersion"])
	assert.NotEmpty(t, data["uptime"])

	dbData, ok := data["database"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 25, dbData["maxOpenConnections"])
	assert.EqualValues(t, 1, dbData["inUse"])
}

func TestSystemHandler_Health_StatsUnavailable(t *testing.T) {
	w := runHealth(NewSystemHandler(&fakeDB{statsErr: assert.AnError}, "1.2.0", zap.NewNop()))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.NotContains(t, data, "database")
}

func TestSystemHandler_Health_DatabaseDown(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	w := runHealth(NewSystemHandler(&fakeDB{pingErr: assert.AnError}, "1.2.0", zap.New(core)))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeUnavailable, resp.Code)
	assert.Equal(t, "Database unavailable", resp.Message)
	assert.Equal(t, 1, logs.FilterMessage("Health check failed").Len())
}
