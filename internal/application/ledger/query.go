package ledger

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// dateLayouts are tried in order; date-only values are the common case from the dashboard
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// scopeParser turns raw query text into filter params
type scopeParser struct {
	strictHostelScope bool
}

// hostelID parses the hostel scope. Empty input means every hostel. Malformed
// input is dropped with a warning, or rejected when strict scoping is enabled.
func (p scopeParser) hostelID(ctx context.Context, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id > 0 {
		return &id, nil
	}
	if p.strictHostelScope {
		return nil, shared.ErrValidationFormat.Wrap("hostelId must be a positive integer", err)
	}
	logger.L(ctx).Warn("Ignoring malformed hostelId, returning unscoped data",
		zap.String("hostel_id", raw),
	)
	return nil, nil
}

// dateRange parses an optional [start, end] range. Unparsable bounds are
// treated as unbounded. A date-only end covers the whole day.
func (p scopeParser) dateRange(ctx context.Context, start, end string) ledger.DateRange {
	var r ledger.DateRange
	if t, _, ok := parseDate(ctx, "startDate", start); ok {
		r.From = &t
	}
	if t, dateOnly, ok := parseDate(ctx, "endDate", end); ok {
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = &t
	}
	return r
}

func parseDate(ctx context.Context, field, raw string) (time.Time, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), layout == time.DateOnly, true
		}
	}
	logger.L(ctx).Warn("Ignoring unparsable date bound",
		zap.String("field", field),
		zap.String("value", raw),
	)
	return time.Time{}, false, false
}

// receivableView picks the status filter; status takes precedence over view
func receivableView(q ReceivablesQuery) string {
	if s := strings.TrimSpace(q.Status); s != "" {
		return s
	}
	if v := strings.TrimSpace(q.View); v != "" {
		return v
	}
	return "all"
}

// paymentType picks the payment type; category takes precedence over type
func paymentType(q ReceivablesQuery) string {
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, "all") {
		return c
	}
	if t := strings.TrimSpace(q.Type); t != "" && !strings.EqualFold(t, "all") {
		return t
	}
	return ""
}

func metaFor(params ledger.FilterParams, view string) Meta {
	return Meta{
		HostelID:    params.HostelID,
		Search:      strings.TrimSpace(params.Search),
		View:        view,
		PaymentType: params.PaymentType,
		Statuses:    params.Statuses,
		StartDate:   params.DateRange.From,
		EndDate:     params.DateRange.To,
	}
}
