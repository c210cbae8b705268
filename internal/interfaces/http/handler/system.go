package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/hostel/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// DBHealthChecker is the part of persistence.Database the health check uses
type DBHealthChecker interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// SystemHandler handles liveness and service information endpoints
type SystemHandler struct {
	BaseHandler
	db          DBHealthChecker
	logger      *zap.Logger
	version     string
	startTime   time.Time
	pingTimeout time.Duration
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db DBHealthChecker, version string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:          db,
		logger:      logger,
		version:     version,
		startTime:   time.Now(),
		pingTimeout: 2 * time.Second,
	}
}

// HealthResponse reports service and database state
type HealthResponse struct {
	Status    string                       `json:"status"`
	Version   string                       `json:"version"`
	GoVersion string                       `json:"goVersion"`
	Uptime    string                       `json:"uptime"`
	Database  *persistence.ConnectionStats `json:"database,omitempty"`
}

// Health godoc
// @Summary      Health check
// @Description  Liveness plus a database ping. Answers 503 when the database is unreachable.
// @Tags         system
// @Produce      json
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		h.Error(c, dto.ErrCodeUnavailable, "Database unavailable")
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	// Missing pool stats do not make the service unhealthy
	if stats, err := h.db.Stats(); err == nil {
		resp.Database = &stats
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Service is healthy"))
}
