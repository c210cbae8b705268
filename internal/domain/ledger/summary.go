package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Totals is a (sum, count) pair over one predicate
type Totals struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// Add combines two totals, normalizing both sums first
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Total: SumAmounts(t.Total, o.Total),
		Count: t.Count + o.Count,
	}
}

// Normalized returns t with its sum rounded to two places
func (t Totals) Normalized() Totals {
	return Totals{Total: NormalizeAmount(t.Total), Count: t.Count}
}

// CategoryTotals holds the five independently computed payable aggregates
type CategoryTotals struct {
	Expenses    Totals // non-laundry expenses
	Alerts      Totals // bill alerts
	Vendors     Totals // active vendors, total_payable
	Laundry     Totals // laundry expenses
	AllExpenses Totals // every expense
}

// PayablesSummary is the composed payables summary
type PayablesSummary struct {
	Bills   Totals          `json:"bills"`
	Vendor  Totals          `json:"vendor"`
	Laundry Totals          `json:"laundry"`
	All     Totals          `json:"all"`
	Total   decimal.Decimal `json:"total"`
}

// ComposePayables builds the payables summary. total is always
// bills + vendor + laundry, computed from the normalized parts.
func ComposePayables(ct CategoryTotals) PayablesSummary {
	bills := ct.Expenses.Add(ct.Alerts)
	vendor := ct.Vendors.Normalized()
	laundry := ct.Laundry.Normalized()
	all := ct.AllExpenses.Add(ct.Alerts)
	return PayablesSummary{
		Bills:   bills,
		Vendor:  vendor,
		Laundry: laundry,
		All:     all,
		Total:   SumAmounts(bills.Total, vendor.Total, laundry.Total),
	}
}

// ViewTotals returns the summary entry backing a payables view
func (s PayablesSummary) ViewTotals(v View) Totals {
	switch v {
	case ViewVendor:
		return s.Vendor
	case ViewLaundry:
		return s.Laundry
	case ViewAll:
		return s.All
	default:
		return s.Bills
	}
}

// StatusTotal is a (sum, count) aggregate for one raw payment status
type StatusTotal struct {
	Status string
	Total  decimal.Decimal
	Count  int64
}

// AmountCount is one entry of the receivables breakdown
type AmountCount struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int64           `json:"count"`
}

// ReceivablesBreakdown partitions payments across the full status universe
type ReceivablesBreakdown struct {
	Pending         AmountCount     `json:"pending"`
	Overdue         AmountCount     `json:"overdue"`
	Partial         AmountCount     `json:"partial"`
	Paid            AmountCount     `json:"paid"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalReceived   decimal.Decimal `json:"totalReceived"`
}

// ReceivableStatuses is the status universe, in breakdown order
var ReceivableStatuses = []string{PaymentPending, PaymentOverdue, PaymentPartial, PaymentPaid}

// OutstandingStatuses are the statuses still owed by tenants
var OutstandingStatuses = []string{PaymentPending, PaymentOverdue, PaymentPartial}

// ComposeReceivables folds per-status aggregates into the breakdown.
// Statuses outside the universe are ignored; missing ones are zero.
func ComposeReceivables(rows []StatusTotal) ReceivablesBreakdown {
	var b ReceivablesBreakdown
	for _, row := range rows {
		entry := b.entry(strings.ToLower(strings.TrimSpace(row.Status)))
		if entry == nil {
			continue
		}
		entry.Amount = SumAmounts(entry.Amount, row.Total)
		entry.Count += row.Count
	}
	b.Pending.Amount = NormalizeAmount(b.Pending.Amount)
	b.Overdue.Amount = NormalizeAmount(b.Overdue.Amount)
	b.Partial.Amount = NormalizeAmount(b.Partial.Amount)
	b.Paid.Amount = NormalizeAmount(b.Paid.Amount)
	b.TotalReceivable = SumAmounts(b.Pending.Amount, b.Overdue.Amount, b.Partial.Amount)
	b.TotalReceived = b.Paid.Amount
	return b
}

// Select sums the breakdown entries for the given statuses
func (b ReceivablesBreakdown) Select(statuses []string) AmountCount {
	var out AmountCount
	seen := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		s = strings.ToLower(strings.TrimSpace(s))
		if seen[s] {
			continue
		}
		seen[s] = true
		if entry := b.entry(s); entry != nil {
			out.Amount = SumAmounts(out.Amount, entry.Amount)
			out.Count += entry.Count
		}
	}
	out.Amount = NormalizeAmount(out.Amount)
	return out
}

func (b *ReceivablesBreakdown) entry(status string) *AmountCount {
	switch status {
	case PaymentPending:
		return &b.Pending
	case PaymentOverdue:
		return &b.Overdue
	case PaymentPartial:
		return &b.Partial
	case PaymentPaid:
		return &b.Paid
	}
	return nil
}

// ResolveReceivableStatuses maps a receivables view or status filter to raw statuses.
// Unknown tokens are ignored; when nothing known remains every status is selected.
func ResolveReceivableStatuses(view string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(statuses ...string) {
		for _, s := range statuses {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	for _, token := range strings.Split(view, ",") {
		switch t := strings.ToLower(strings.TrimSpace(token)); t {
		case "all":
			add(ReceivableStatuses...)
		case "outstanding", "receivable", "unpaid":
			add(OutstandingStatuses...)
		case "received":
			add(PaymentPaid)
		case PaymentPending, PaymentOverdue, PaymentPartial, PaymentPaid:
			add(t)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), ReceivableStatuses...)
	}
	return out
}
