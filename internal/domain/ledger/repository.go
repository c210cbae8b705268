package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// AggregateRepository computes sums and counts over predicates.
// Aggregates always cover the full predicate scope, never a page.
type AggregateRepository interface {
	// Aggregate returns the (sum, count) of the kind's amount column over p.
	// Vendors sum total_payable; every other kind sums amount.
	Aggregate(ctx context.Context, p Predicate) (Totals, error)

	// AggregateByStatus groups the (sum, count) of p by the kind's status column
	AggregateByStatus(ctx context.Context, p Predicate) ([]StatusTotal, error)

	// SumCapital sums hostels.capital_invested, optionally for one hostel
	SumCapital(ctx context.Context, hostelID *int64) (decimal.Decimal, error)
}

// RecordRepository loads ordered detail rows for list views
type RecordRepository interface {
	// FindExpenses orders by date desc, id desc
	FindExpenses(ctx context.Context, p Predicate, offset, limit int) ([]Expense, error)

	// FindAlerts orders by created_at desc, id desc
	FindAlerts(ctx context.Context, p Predicate, offset, limit int) ([]Alert, error)

	// FindVendors orders by name, id
	FindVendors(ctx context.Context, p Predicate, offset, limit int) ([]Vendor, error)

	// FindPayments orders by payment_date desc, created_at desc, id desc
	FindPayments(ctx context.Context, p Predicate, offset, limit int) ([]Payment, error)
}

// Store is the read-only view over the ledger tables
type Store interface {
	AggregateRepository
	RecordRepository
}
