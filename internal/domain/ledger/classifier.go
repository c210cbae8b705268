package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the display status of a ledger item
type Status string

const (
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
	StatusPartial Status = "Partial"
	StatusPaid    Status = "Paid"
)

// ItemType is the display type of a ledger item
type ItemType string

const (
	ItemExpense ItemType = "Expense"
	ItemVendor  ItemType = "Vendor"
	ItemPayment ItemType = "Payment"
)

// Raw payment statuses, which are also the receivables breakdown keys
const (
	PaymentPending = "pending"
	PaymentOverdue = "overdue"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

var alertStatusLabels = map[string]Status{
	"pending":     StatusPending,
	"in_progress": StatusPending,
	"resolved":    StatusPaid,
	"dismissed":   StatusPaid,
}

var paymentStatusLabels = map[string]Status{
	PaymentPending: StatusPending,
	PaymentOverdue: StatusOverdue,
	PaymentPartial: StatusPartial,
	PaymentPaid:    StatusPaid,
}

// LedgerItem is the uniform view of any ledger record.
// Amount is signed: payables are negative, receivables positive.
type LedgerItem struct {
	ID             int64
	Reference      string
	Kind           EntityKind
	Type           ItemType
	Title          string
	Category       string
	LedgerCategory LedgerCategory
	Amount         decimal.Decimal
	Date           *time.Time
	HostelID       *int64
	Hostel         string
	Status         Status
	RawStatus      string
	Extra          map[string]any
}

// AlertStatus maps a raw alert status to its two-state display status
func AlertStatus(raw string) Status {
	if s, ok := alertStatusLabels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusPending
}

// AlertStatusesFor lists the raw alert statuses shown with the given display status
func AlertStatusesFor(display Status) []string {
	var raws []string
	for raw, s := range alertStatusLabels {
		if s == display {
			raws = append(raws, raw)
		}
	}
	sort.Strings(raws)
	return raws
}

// PaymentStatus maps a raw payment status to its display label, defaulting to Pending
func PaymentStatus(raw string) Status {
	if s, ok := paymentStatusLabels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusPending
}

// VendorStatus derives the display status of a vendor from its balances.
// The unpaid override is applied after the balance check and wins.
func VendorStatus(totalPayable, totalPaid, balance decimal.Decimal) Status {
	status := StatusPending
	if NormalizeAmount(balance).LessThanOrEqual(decimal.Zero) {
		status = StatusPaid
	}
	if NormalizeAmount(totalPayable).IsPositive() && NormalizeAmount(totalPaid).IsZero() {
		status = StatusPending
	}
	return status
}

// ClassifyExpense maps an expense to a ledger item. Expenses are already settled.
func ClassifyExpense(e Expense) LedgerItem {
	date := e.Date
	return LedgerItem{
		ID:             e.ID,
		Reference:      FormatReference(PrefixExpense, e.ID),
		Kind:           KindExpense,
		Type:           ItemExpense,
		Title:          e.Title,
		Category:       e.Category,
		LedgerCategory: Classify(KindExpense, e.Category),
		Amount:         NormalizeAmount(e.Amount).Neg(),
		Date:           &date,
		HostelID:       e.HostelID,
		Hostel:         e.HostelName,
		Status:         StatusPaid,
		Extra: map[string]any{
			"expenseType": e.Type,
		},
	}
}

// ClassifyAlert maps a bill alert to a ledger item
func ClassifyAlert(a Alert) LedgerItem {
	date := a.CreatedAt
	if a.DueDate != nil {
		date = *a.DueDate
	}
	extra := map[string]any{
		"description": a.Description,
		"tenantName":  a.TenantName,
	}
	if a.DueDate != nil {
		extra["dueDate"] = *a.DueDate
	}
	if a.TenantID != nil {
		extra["tenantId"] = *a.TenantID
	}
	return LedgerItem{
		ID:             a.ID,
		Reference:      FormatReference(PrefixBill, a.ID),
		Kind:           KindAlert,
		Type:           ItemExpense,
		Title:          a.Title,
		Category:       "Bill",
		LedgerCategory: Classify(KindAlert, ""),
		Amount:         NormalizeAmount(a.Amount).Neg(),
		Date:           &date,
		HostelID:       a.HostelID,
		Hostel:         a.HostelName,
		Status:         AlertStatus(a.Status),
		RawStatus:      a.Status,
		Extra:          extra,
	}
}

// ClassifyVendor maps an active vendor to a ledger item carrying its outstanding payable
func ClassifyVendor(v Vendor) LedgerItem {
	date := v.CreatedAt
	return LedgerItem{
		ID:             v.ID,
		Reference:      FormatReference(PrefixVendor, v.ID),
		Kind:           KindVendor,
		Type:           ItemVendor,
		Title:          v.Name,
		Category:       v.Category,
		LedgerCategory: Classify(KindVendor, v.Category),
		Amount:         NormalizeAmount(v.TotalPayable).Neg(),
		Date:           &date,
		HostelID:       v.HostelID,
		Hostel:         v.HostelName,
		Status:         VendorStatus(v.TotalPayable, v.TotalPaid, v.Balance),
		RawStatus:      v.Status,
		Extra: map[string]any{
			"companyName":  v.CompanyName,
			"email":        v.Email,
			"totalPayable": Float(NormalizeAmount(v.TotalPayable)),
			"totalPaid":    Float(NormalizeAmount(v.TotalPaid)),
			"balance":      Float(NormalizeAmount(v.Balance)),
			"paymentTerms": v.PaymentTerms,
		},
	}
}

// ClassifyPayment maps a tenant payment to a receivable ledger item
func ClassifyPayment(p Payment) LedgerItem {
	reference := strings.TrimSpace(p.ReceiptNumber)
	if reference == "" {
		reference = FormatReference(PaymentTypePrefix(p.PaymentType), p.ID)
	}
	date := p.CreatedAt
	if p.PaymentDate != nil {
		date = *p.PaymentDate
	}
	extra := map[string]any{
		"paymentType":   p.PaymentType,
		"tenantName":    p.TenantName,
		"tenantEmail":   p.TenantEmail,
		"receiptNumber": p.ReceiptNumber,
	}
	if p.TenantID != nil {
		extra["tenantId"] = *p.TenantID
	}
	return LedgerItem{
		ID:             p.ID,
		Reference:      reference,
		Kind:           KindPayment,
		Type:           ItemPayment,
		Title:          p.TenantName,
		Category:       p.PaymentType,
		LedgerCategory: Classify(KindPayment, p.PaymentType),
		Amount:         NormalizeAmount(p.Amount),
		Date:           &date,
		HostelID:       p.HostelID,
		Hostel:         p.HostelName,
		Status:         PaymentStatus(p.Status),
		RawStatus:      p.Status,
		Extra:          extra,
	}
}
