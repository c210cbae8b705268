package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/hostel/backend/internal/application/ledger"
	"github.com/hostel/backend/internal/interfaces/http/dto"
	"github.com/hostel/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubLedger answers every operation with an empty result and records the last call
type stubLedger struct {
	last string
}

func (s *stubLedger) GetFinancialSummary(context.Context, ledgerapp.FinancialSummaryQuery) (*ledgerapp.FinancialSummary, error) {
	s.last = "summary"
	return &ledgerapp.FinancialSummary{}, nil
}

func (s *stubLedger) GetPayables(context.Context, ledgerapp.PayablesQuery) (*ledgerapp.PayablesResult, error) {
	s.last = "payables"
	return &ledgerapp.PayablesResult{Items: []ledgerapp.ItemResponse{}}, nil
}

func (s *stubLedger) GetPayablesSummary(context.Context, ledgerapp.PayablesSummaryQuery) (*ledgerapp.PayablesSummaryResult, error) {
	s.last = "payables_summary"
	return &ledgerapp.PayablesSummaryResult{}, nil
}

func (s *stubLedger) GetReceivables(context.Context, ledgerapp.ReceivablesQuery) (*ledgerapp.ReceivablesResult, error) {
	s.last = "receivables"
	return &ledgerapp.ReceivablesResult{Items: []ledgerapp.ItemResponse{}}, nil
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterSetup_Fallbacks(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	NewRouter(engine).Register(group).Setup()

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown path", http.MethodGet, "/api/v1/nowhere", http.StatusNotFound, dto.ErrCodeNotFound},
		{"wrong method", http.MethodPost, "/api/v1/test/ping", http.StatusMethodNotAllowed, dto.ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("finance", "/finance")
		assert.Equal(t, "finance", g.Name())
		assert.Equal(t, "/finance", g.Prefix())
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").
			Use(func(c *gin.Context) {
				c.Header("X-Group", "test")
				c.Next()
			}).
			GET("/items", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/items", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "test", w.Header().Get("X-Group"))
	})

	t.Run("nests subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("outer", "/outer")
		g.Group("inner", "/inner").GET("/leaf", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/outer/inner/leaf", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewFinanceGroup(t *testing.T) {
	stub := &stubLedger{}
	engine := gin.New()
	NewRouter(engine).Register(NewFinanceGroup(handler.NewLedgerHandler(stub))).Setup()

	routes := map[string]string{
		"/api/v1/finance/summary":          "summary",
		"/api/v1/finance/payables":         "payables",
		"/api/v1/finance/payables/summary": "payables_summary",
		"/api/v1/finance/receivables":      "receivables",
	}

	for path, op := range routes {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, op, stub.last)
		})
	}
}
