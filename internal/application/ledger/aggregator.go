package ledger

import (
	"context"
	"fmt"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs the independent aggregate queries of a request concurrently.
// Results are combined only after every query has finished; the first failure
// fails the whole call.
type Aggregator struct {
	store ledger.AggregateRepository
}

// NewAggregator creates a new Aggregator
func NewAggregator(store ledger.AggregateRepository) *Aggregator {
	return &Aggregator{store: store}
}

// Payables computes the five payable aggregates over one scope
func (a *Aggregator) Payables(ctx context.Context, params ledger.FilterParams) (ledger.CategoryTotals, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.aggregate_payables", telemetry.SpanAttrHostelID, params.HostelID)
	defer span.End()

	var ct ledger.CategoryTotals
	g, gctx := errgroup.WithContext(ctx)
	a.aggregate(gctx, g, "expenses", ledger.ExpensePredicate(params, ledger.CategoryExcludeLaundry), &ct.Expenses)
	a.aggregate(gctx, g, "alerts", ledger.AlertPredicate(params), &ct.Alerts)
	a.aggregate(gctx, g, "vendors", ledger.VendorPredicate(params), &ct.Vendors)
	a.aggregate(gctx, g, "laundry", ledger.ExpensePredicate(params, ledger.CategoryOnlyLaundry), &ct.Laundry)
	a.aggregate(gctx, g, "all_expenses", ledger.ExpensePredicate(params, ledger.CategoryAny), &ct.AllExpenses)
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return ledger.CategoryTotals{}, err
	}
	return ct, nil
}

// Receivables computes the per-status payment breakdown over the full status universe
func (a *Aggregator) Receivables(ctx context.Context, params ledger.FilterParams) (ledger.ReceivablesBreakdown, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.aggregate_receivables", telemetry.SpanAttrHostelID, params.HostelID)
	defer span.End()

	rows, err := a.store.AggregateByStatus(ctx, ledger.PaymentPredicate(params, ledger.ReceivableStatuses))
	if err != nil {
		telemetry.RecordError(span, err)
		return ledger.ReceivablesBreakdown{}, fmt.Errorf("receivables breakdown: %w", err)
	}
	return ledger.ComposeReceivables(rows), nil
}

// financialTotals are the inputs of the financial summary
type financialTotals struct {
	breakdown ledger.ReceivablesBreakdown
	expenses  ledger.Totals
	paidBills ledger.Totals
	capital   decimal.Decimal
}

// financial computes the receivables breakdown, settled expenses, paid bill
// alerts and invested capital concurrently
func (a *Aggregator) financial(ctx context.Context, params ledger.FilterParams) (financialTotals, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.aggregate_financial", telemetry.SpanAttrHostelID, params.HostelID)
	defer span.End()

	var out financialTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := a.Receivables(gctx, params)
		out.breakdown = b
		return err
	})
	a.aggregate(gctx, g, "expenses", ledger.ExpensePredicate(params, ledger.CategoryAny), &out.expenses)

	paid := params
	paid.Statuses = ledger.AlertStatusesFor(ledger.StatusPaid)
	a.aggregate(gctx, g, "paid_bills", ledger.AlertPredicate(paid), &out.paidBills)

	g.Go(func() error {
		capital, err := a.store.SumCapital(gctx, params.HostelID)
		if err != nil {
			return fmt.Errorf("capital invested: %w", err)
		}
		out.capital = capital
		return nil
	})
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return financialTotals{}, err
	}
	return out, nil
}

// aggregate schedules one (sum, count) query on g, writing into dst on success.
// Each dst is written by exactly one goroutine and read only after g.Wait.
func (a *Aggregator) aggregate(ctx context.Context, g *errgroup.Group, name string, p ledger.Predicate, dst *ledger.Totals) {
	g.Go(func() error {
		ctx, span := telemetry.StartSpan(ctx, "ledger.aggregate."+name, telemetry.SpanAttrSegment, name)
		defer span.End()

		totals, err := a.store.Aggregate(ctx, p)
		if err != nil {
			telemetry.RecordError(span, err)
			return fmt.Errorf("aggregate %s: %w", name, err)
		}
		telemetry.SetAttributes(span, telemetry.SpanAttrTotal, totals.Total.String(), telemetry.SpanAttrCount, totals.Count)
		*dst = totals
		return nil
	})
}
