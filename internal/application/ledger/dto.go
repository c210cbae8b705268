package ledger

import (
	"time"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// ===================== Request DTOs =====================

// PayablesQuery selects a page of one payables view.
// Every field is kept as raw text; malformed page and limit values fall back to defaults.
type PayablesQuery struct {
	HostelID string `form:"hostelId"`
	Search   string `form:"search" binding:"omitempty,max=200"`
	Type     string `form:"type"` // bills, vendor, laundry or all in any case
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

// PayablesSummaryQuery scopes the payables summary
type PayablesSummaryQuery struct {
	HostelID string `form:"hostelId"`
	Search   string `form:"search" binding:"omitempty,max=200"`
	Type     string `form:"type"` // bills, vendor, laundry or all in any case
}

// ReceivablesQuery selects a page of tenant payments.
// Status and View are aliases; Status wins when both are set. Category and Type
// are aliases for the payment type.
type ReceivablesQuery struct {
	HostelID  string `form:"hostelId"`
	Search    string `form:"search" binding:"omitempty,max=200"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Status    string `form:"status"`
	View      string `form:"view"`
	Category  string `form:"category"`
	Type      string `form:"type"`
}

// FinancialSummaryQuery scopes the financial summary
type FinancialSummaryQuery struct {
	HostelID  string `form:"hostelId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ===================== Response DTOs =====================

// Meta echoes the scope a response was computed for
type Meta struct {
	HostelID    *int64     `json:"hostelId"`
	Search      string     `json:"search,omitempty"`
	View        string     `json:"view,omitempty"`
	PaymentType string     `json:"paymentType,omitempty"`
	Statuses    []string   `json:"statuses,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// ItemResponse is the display shape of one ledger item
type ItemResponse struct {
	ID             int64                 `json:"id"`
	Reference      string                `json:"reference"`
	Type           ledger.ItemType       `json:"type"`
	Kind           ledger.EntityKind     `json:"kind"`
	Title          string                `json:"title"`
	Category       string                `json:"category"`
	LedgerCategory ledger.LedgerCategory `json:"ledgerCategory"`
	Amount         decimal.Decimal       `json:"amount"`
	Date           *time.Time            `json:"date"`
	HostelID       *int64                `json:"hostelId"`
	Hostel         string                `json:"hostel"`
	Status         ledger.Status         `json:"status"`
	RawStatus      string                `json:"rawStatus,omitempty"`
	Extra          map[string]any        `json:"extra,omitempty"`
}

// PayablesResult is one page of a payables view.
// TotalAmount covers the whole view; PageAmount is the signed sum of Items.
type PayablesResult struct {
	Items       []ItemResponse         `json:"items"`
	Total       int64                  `json:"total"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	PageAmount  decimal.Decimal        `json:"pageAmount"`
	Pagination  ledger.Pagination      `json:"pagination"`
	Summary     ledger.PayablesSummary `json:"summary"`
	Meta        Meta                   `json:"meta"`
}

// PayablesSummaryResult is the payables summary with its scope
type PayablesSummaryResult struct {
	ledger.PayablesSummary
	Meta Meta `json:"meta"`
}

// ReceivableTotals is the outstanding/received split of the breakdown
type ReceivableTotals struct {
	Pending  decimal.Decimal `json:"pending"`
	Received decimal.Decimal `json:"received"`
}

// ReceivablesResult is one page of tenant payments
type ReceivablesResult struct {
	Items       []ItemResponse              `json:"items"`
	Total       int64                       `json:"total"`
	TotalAmount decimal.Decimal             `json:"totalAmount"`
	PageAmount  decimal.Decimal             `json:"pageAmount"`
	Pagination  ledger.Pagination           `json:"pagination"`
	Summary     ledger.ReceivablesBreakdown `json:"summary"`
	Totals      ReceivableTotals            `json:"totals"`
	Meta        Meta                        `json:"meta"`
}

// FinancialSummary is the hostel-level income and expense overview
type FinancialSummary struct {
	TotalIncome          decimal.Decimal             `json:"totalIncome"`
	TotalExpenses        decimal.Decimal             `json:"totalExpenses"`
	ProfitLoss           decimal.Decimal             `json:"profitLoss"`
	CapitalInvested      decimal.Decimal             `json:"capitalInvested"`
	TotalReceivable      decimal.Decimal             `json:"totalReceivable"`
	TotalReceived        decimal.Decimal             `json:"totalReceived"`
	ReceivablesBreakdown ledger.ReceivablesBreakdown `json:"receivablesBreakdown"`
	Meta                 Meta                        `json:"meta"`
}

// ToItemResponse converts a classified ledger item
func ToItemResponse(item ledger.LedgerItem) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Reference:      item.Reference,
		Type:           item.Type,
		Kind:           item.Kind,
		Title:          item.Title,
		Category:       item.Category,
		LedgerCategory: item.LedgerCategory,
		Amount:         item.Amount,
		Date:           item.Date,
		HostelID:       item.HostelID,
		Hostel:         item.Hostel,
		Status:         item.Status,
		RawStatus:      item.RawStatus,
		Extra:          item.Extra,
	}
}

// ToItemResponses converts a page of ledger items. The result is never nil.
func ToItemResponses(items []ledger.LedgerItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ToItemResponse(item)
	}
	return out
}
