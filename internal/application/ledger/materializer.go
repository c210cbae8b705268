package ledger

import (
	"context"
	"fmt"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"golang.org/x/sync/errgroup"
)

// fetchFunc loads and classifies rows [offset, offset+limit) of one segment
type fetchFunc func(ctx context.Context, offset, limit int) ([]ledger.LedgerItem, error)

// segment is one independently ordered part of a view
type segment struct {
	name  string
	count int64
	fetch fetchFunc
}

// Materializer loads the detail rows of a view page
type Materializer struct {
	store ledger.RecordRepository
}

// NewMaterializer creates a new Materializer
func NewMaterializer(store ledger.RecordRepository) *Materializer {
	return &Materializer{store: store}
}

// payableSegments returns the segments of a payables view, in output order.
// Counts come from the already computed aggregates so no extra count query runs.
func (m *Materializer) payableSegments(view ledger.View, params ledger.FilterParams, ct ledger.CategoryTotals) []segment {
	expenses := func(scope ledger.CategoryScope, count int64, name string) segment {
		p := ledger.ExpensePredicate(params, scope)
		return segment{name: name, count: count, fetch: m.expenseFetcher(p)}
	}
	alerts := segment{name: "alerts", count: ct.Alerts.Count, fetch: m.alertFetcher(ledger.AlertPredicate(params))}

	switch view {
	case ledger.ViewVendor:
		return []segment{{name: "vendors", count: ct.Vendors.Count, fetch: m.vendorFetcher(ledger.VendorPredicate(params))}}
	case ledger.ViewLaundry:
		return []segment{expenses(ledger.CategoryOnlyLaundry, ct.Laundry.Count, "laundry")}
	case ledger.ViewAll:
		return []segment{expenses(ledger.CategoryAny, ct.AllExpenses.Count, "all_expenses"), alerts}
	default:
		return []segment{expenses(ledger.CategoryExcludeLaundry, ct.Expenses.Count, "expenses"), alerts}
	}
}

// paymentSegments returns the single receivables segment
func (m *Materializer) paymentSegments(params ledger.FilterParams, count int64) []segment {
	return []segment{{
		name:  "payments",
		count: count,
		fetch: m.paymentFetcher(ledger.PaymentPredicate(params, params.Statuses)),
	}}
}

// page cuts rows [offset, offset+limit) out of the concatenation of segments.
// Windows are fetched concurrently and reassembled in segment order.
func (m *Materializer) page(ctx context.Context, segments []segment, offset, limit int) ([]ledger.LedgerItem, error) {
	counts := make([]int64, len(segments))
	for i, s := range segments {
		counts[i] = s.count
	}
	windows := ledger.PlanWindows(counts, offset, limit)
	if len(windows) == 0 {
		return []ledger.LedgerItem{}, nil
	}

	parts := make([][]ledger.LedgerItem, len(windows))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		seg := segments[w.Segment]
		g.Go(func() error {
			ctx, span := telemetry.StartSpan(gctx, "ledger.fetch."+seg.name,
				telemetry.SpanAttrSegment, seg.name,
				telemetry.SpanAttrLimit, w.Limit,
			)
			defer span.End()

			items, err := seg.fetch(ctx, w.Offset, w.Limit)
			if err != nil {
				telemetry.RecordError(span, err)
				return fmt.Errorf("fetch %s: %w", seg.name, err)
			}
			parts[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]ledger.LedgerItem, 0, limit)
	for _, part := range parts {
		items = append(items, part...)
	}
	return items, nil
}

func (m *Materializer) expenseFetcher(p ledger.Predicate) fetchFunc {
	return func(ctx context.Context, offset, limit int) ([]ledger.LedgerItem, error) {
		rows, err := m.store.FindExpenses(ctx, p, offset, limit)
		if err != nil {
			return nil, err
		}
		items := make([]ledger.LedgerItem, len(rows))
		for i, row := range rows {
			items[i] = ledger.ClassifyExpense(row)
		}
		return items, nil
	}
}

func (m *Materializer) alertFetcher(p ledger.Predicate) fetchFunc {
	return func(ctx context.Context, offset, limit int) ([]ledger.LedgerItem, error) {
		rows, err := m.store.FindAlerts(ctx, p, offset, limit)
		if err != nil {
			return nil, err
		}
		items := make([]ledger.LedgerItem, len(rows))
		for i, row := range rows {
			items[i] = ledger.ClassifyAlert(row)
		}
		return items, nil
	}
}

func (m *Materializer) vendorFetcher(p ledger.Predicate) fetchFunc {
	return func(ctx context.Context, offset, limit int) ([]ledger.LedgerItem, error) {
		rows, err := m.store.FindVendors(ctx, p, offset, limit)
		if err != nil {
			return nil, err
		}
		items := make([]ledger.LedgerItem, len(rows))
		for i, row := range rows {
			items[i] = ledger.ClassifyVendor(row)
		}
		return items, nil
	}
}

func (m *Materializer) paymentFetcher(p ledger.Predicate) fetchFunc {
	return func(ctx context.Context, offset, limit int) ([]ledger.LedgerItem, error) {
		rows, err := m.store.FindPayments(ctx, p, offset, limit)
		if err != nil {
			return nil, err
		}
		items := make([]ledger.LedgerItem, len(rows))
		for i, row := range rows {
			items[i] = ledger.ClassifyPayment(row)
		}
		return items, nil
	}
}
