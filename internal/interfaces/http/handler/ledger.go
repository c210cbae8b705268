package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/hostel/backend/internal/application/ledger"
)

// LedgerService is the application surface the ledger endpoints need
type LedgerService interface {
	GetFinancialSummary(ctx context.Context, q ledgerapp.FinancialSummaryQuery) (*ledgerapp.FinancialSummary, error)
	GetPayables(ctx context.Context, q ledgerapp.PayablesQuery) (*ledgerapp.PayablesResult, error)
	GetPayablesSummary(ctx context.Context, q ledgerapp.PayablesSummaryQuery) (*ledgerapp.PayablesSummaryResult, error)
	GetReceivables(ctx context.Context, q ledgerapp.ReceivablesQuery) (*ledgerapp.ReceivablesResult, error)
}

// LedgerHandler serves the read-only finance endpoints
type LedgerHandler struct {
	BaseHandler
	service LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// GetFinancialSummary godoc
// @Summary      Get financial summary
// @Description  Income, expenses, profit/loss, capital and receivables for a hostel and date range
// @Tags         finance
// @Produce      json
// @Param        hostelId   query  string  false  "Hostel ID"
// @Param        startDate  query  string  false  "Range start (YYYY-MM-DD or RFC 3339)"
// @Param        endDate    query  string  false  "Range end, inclusive"
// @Router       /finance/summary [get]
func (h *LedgerHandler) GetFinancialSummary(c *gin.Context) {
	var q ledgerapp.FinancialSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.GetFinancialSummary(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result, "Financial summary retrieved successfully")
}

// GetPayables godoc
// @Summary      List payables
// @Description  One page of a payables view. bills is the default view.
// @Tags         finance
// @Produce      json
// @Param        type      query  string  false  "bills, vendor, laundry or all"
// @Param        hostelId  query  string  false  "Hostel ID"
// @Param        search    query  string  false  "Free text or reference number"
// @Param        page      query  string  false  "Page number"
// @Param        limit     query  string  false  "Page size"
// @Router       /finance/payables [get]
func (h *LedgerHandler) GetPayables(c *gin.Context) {
	var q ledgerapp.PayablesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.GetPayables(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result, "Payables retrieved successfully")
}

// GetPayablesSummary godoc
// @Summary      Get payables summary
// @Tags         finance
// @Produce      json
// @Param        type      query  string  false  "bills, vendor, laundry or all"
// @Param        hostelId  query  string  false  "Hostel ID"
// @Param        search    query  string  false  "Free text or reference number"
// @Router       /finance/payables/summary [get]
func (h *LedgerHandler) GetPayablesSummary(c *gin.Context) {
	var q ledgerapp.PayablesSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.GetPayablesSummary(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result, "Payables summary retrieved successfully")
}

// GetReceivables godoc
// @Summary      List receivables
// @Description  One page of tenant payments filtered by status view
// @Tags         finance
// @Produce      json
// @Param        status     query  string  false  "all, pending, overdue, partial, paid, outstanding, received or a comma-separated list"
// @Param        view       query  string  false  "Alias of status"
// @Param        category   query  string  false  "Payment type"
// @Param        hostelId   query  string  false  "Hostel ID"
// @Param        search     query  string  false  "Free text or receipt number"
// @Param        startDate  query  string  false  "Range start"
// @Param        endDate    query  string  false  "Range end, inclusive"
// @Param        page       query  string  false  "Page number"
// @Param        limit      query  string  false  "Page size"
// @Router       /finance/receivables [get]
func (h *LedgerHandler) GetReceivables(c *gin.Context) {
	var q ledgerapp.ReceivablesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.GetReceivables(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result, "Receivables retrieved successfully")
}
