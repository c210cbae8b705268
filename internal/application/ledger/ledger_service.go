package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Operation names used for spans, metrics and cache keys
const (
	OpGetPayables         = "get_payables"
	OpGetPayablesSummary  = "get_payables_summary"
	OpGetReceivables      = "get_receivables"
	OpGetFinancialSummary = "get_financial_summary"
)

// Service answers the four ledger queries. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	aggregator   *Aggregator
	materializer *Materializer
	cache        *summaryCache
	metrics      *telemetry.LedgerMetrics
	logger       *zap.Logger
	parser       scopeParser
	maxPageSize  int
}

// Option configures a Service
type Option func(*Service)

// WithSummaryCache enables read-through caching of the summary operations.
// A nil store leaves caching disabled.
func WithSummaryCache(store SummaryCache, ttl time.Duration) Option {
	return func(s *Service) {
		if store != nil && ttl > 0 {
			s.cache = &summaryCache{store: store, ttl: ttl}
		}
	}
}

// WithMetrics records operation metrics on m
func WithMetrics(m *telemetry.LedgerMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithMaxPageSize caps the page limit
func WithMaxPageSize(n int) Option {
	return func(s *Service) {
		s.maxPageSize = n
	}
}

// WithStrictHostelScope rejects malformed hostelId values instead of dropping the scope
func WithStrictHostelScope(strict bool) Option {
	return func(s *Service) {
		s.parser.strictHostelScope = strict
	}
}

// NewService creates a new ledger Service
func NewService(store ledger.Store, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		aggregator:   NewAggregator(store),
		materializer: NewMaterializer(store),
		logger:       logger,
		maxPageSize:  ledger.MaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPayables returns one page of a payables view together with the full-scope summary
func (s *Service) GetPayables(ctx context.Context, q PayablesQuery) (result *PayablesResult, err error) {
	view, ok := ledger.ParsePayablesView(q.Type)
	if !ok {
		return nil, invalidView(q.Type)
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", OpGetPayables, telemetry.SpanAttrView, string(view))
	defer s.finish(ctx, span, OpGetPayables, string(view), time.Now(), &err)

	hostelID, err := s.parser.hostelID(ctx, q.HostelID)
	if err != nil {
		return nil, err
	}
	params := ledger.FilterParams{HostelID: hostelID, Search: q.Search}
	page := ledger.NewPageRequest(q.Page, q.Limit, s.maxPageSize)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrHostelID, hostelID,
		telemetry.SpanAttrSearch, strings.TrimSpace(q.Search),
		telemetry.SpanAttrPage, page.Page,
		telemetry.SpanAttrLimit, page.Limit,
	)

	ct, err := s.aggregator.Payables(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payables: %w", err)
	}
	summary := ledger.ComposePayables(ct)
	viewTotals := summary.ViewTotals(view)

	segments := s.materializer.payableSegments(view, params, ct)
	items, err := s.materializer.page(ctx, segments, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load payables page: %w", err)
	}

	return &PayablesResult{
		Items:       ToItemResponses(items),
		Total:       viewTotals.Count,
		TotalAmount: viewTotals.Total,
		PageAmount:  ledger.PageAmount(items).Total,
		Pagination:  ledger.Paginate(page, viewTotals.Count),
		Summary:     summary,
		Meta:        metaFor(params, string(view)),
	}, nil
}

// GetPayablesSummary returns the payables summary for a scope. The view only
// echoes in meta; the summary always covers every category.
func (s *Service) GetPayablesSummary(ctx context.Context, q PayablesSummaryQuery) (result *PayablesSummaryResult, err error) {
	view, ok := ledger.ParsePayablesView(q.Type)
	if !ok {
		return nil, invalidView(q.Type)
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", OpGetPayablesSummary, telemetry.SpanAttrView, string(view))
	defer s.finish(ctx, span, OpGetPayablesSummary, string(view), time.Now(), &err)

	hostelID, err := s.parser.hostelID(ctx, q.HostelID)
	if err != nil {
		return nil, err
	}
	params := ledger.FilterParams{HostelID: hostelID, Search: q.Search}
	meta := metaFor(params, string(view))
	telemetry.SetAttributes(span,
		telemetry.SpanAttrHostelID, hostelID,
		telemetry.SpanAttrSearch, meta.Search,
	)

	return cached(ctx, s, OpGetPayablesSummary, meta, func() (*PayablesSummaryResult, error) {
		ct, err := s.aggregator.Payables(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate payables: %w", err)
		}
		return &PayablesSummaryResult{PayablesSummary: ledger.ComposePayables(ct), Meta: meta}, nil
	})
}

// GetReceivables returns one page of tenant payments matching the requested
// statuses, with the breakdown over every status
func (s *Service) GetReceivables(ctx context.Context, q ReceivablesQuery) (result *ReceivablesResult, err error) {
	view := strings.ToLower(receivableView(q))
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", OpGetReceivables, telemetry.SpanAttrView, view)
	defer s.finish(ctx, span, OpGetReceivables, string(ledger.ViewReceivables), time.Now(), &err)

	hostelID, err := s.parser.hostelID(ctx, q.HostelID)
	if err != nil {
		return nil, err
	}
	params := ledger.FilterParams{
		HostelID:    hostelID,
		Search:      q.Search,
		DateRange:   s.parser.dateRange(ctx, q.StartDate, q.EndDate),
		PaymentType: paymentType(q),
		Statuses:    ledger.ResolveReceivableStatuses(view),
	}
	page := ledger.NewPageRequest(q.Page, q.Limit, s.maxPageSize)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrHostelID, hostelID,
		telemetry.SpanAttrSearch, strings.TrimSpace(q.Search),
		telemetry.SpanAttrPage, page.Page,
		telemetry.SpanAttrLimit, page.Limit,
	)

	breakdown, err := s.aggregator.Receivables(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate receivables: %w", err)
	}
	selected := breakdown.Select(params.Statuses)

	segments := s.materializer.paymentSegments(params, selected.Count)
	items, err := s.materializer.page(ctx, segments, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivables page: %w", err)
	}

	return &ReceivablesResult{
		Items:       ToItemResponses(items),
		Total:       selected.Count,
		TotalAmount: selected.Amount,
		PageAmount:  ledger.PageAmount(items).Total,
		Pagination:  ledger.Paginate(page, selected.Count),
		Summary:     breakdown,
		Totals: ReceivableTotals{
			Pending:  breakdown.TotalReceivable,
			Received: breakdown.TotalReceived,
		},
		Meta: metaFor(params, view),
	}, nil
}

// GetFinancialSummary returns income, expenses and profit/loss for a scope.
// Income is money received from tenants; expenses are recorded expenses plus
// bill alerts already settled.
func (s *Service) GetFinancialSummary(ctx context.Context, q FinancialSummaryQuery) (result *FinancialSummary, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", OpGetFinancialSummary)
	defer s.finish(ctx, span, OpGetFinancialSummary, "", time.Now(), &err)

	hostelID, err := s.parser.hostelID(ctx, q.HostelID)
	if err != nil {
		return nil, err
	}
	params := ledger.FilterParams{
		HostelID:  hostelID,
		DateRange: s.parser.dateRange(ctx, q.StartDate, q.EndDate),
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrHostelID, hostelID)
	meta := metaFor(params, "")

	return cached(ctx, s, OpGetFinancialSummary, meta, func() (*FinancialSummary, error) {
		totals, err := s.aggregator.financial(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate financial summary: %w", err)
		}
		income := totals.breakdown.TotalReceived
		expenses := ledger.SumAmounts(totals.expenses.Total, totals.paidBills.Total)
		return &FinancialSummary{
			TotalIncome:          income,
			TotalExpenses:        expenses,
			ProfitLoss:           ledger.NormalizeAmount(income.Sub(expenses)),
			CapitalInvested:      ledger.NormalizeAmount(totals.capital),
			TotalReceivable:      totals.breakdown.TotalReceivable,
			TotalReceived:        totals.breakdown.TotalReceived,
			ReceivablesBreakdown: totals.breakdown,
			Meta:                 meta,
		}, nil
	})
}

// finish ends an operation span, records metrics and logs failures
func (s *Service) finish(ctx context.Context, span trace.Span, op, view string, start time.Time, errp *error) {
	elapsed := time.Since(start)
	err := *errp
	s.metrics.RecordOperation(ctx, op, view, elapsed, err)
	if err != nil {
		telemetry.RecordError(span, err)
		log := logger.WithTraceContext(ctx, s.logger)
		if shared.IsClientError(err) {
			log.Warn("Rejected ledger request", zap.String("operation", op), zap.Error(err))
		} else {
			log.Error("Ledger operation failed",
				zap.String("operation", op),
				zap.String("view", view),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		}
	}
	span.End()
}

func invalidView(raw string) error {
	return shared.ErrInvalidInput.Wrap(
		fmt.Sprintf("type must be one of bills, vendor, laundry, all (got %q)", raw), nil)
}
