package ledger

import (
	"strings"
	"time"
)

// CategoryScope narrows expenses by their laundry classification
type CategoryScope int

const (
	CategoryAny CategoryScope = iota
	CategoryExcludeLaundry
	CategoryOnlyLaundry
)

// DateRange is an optional inclusive time window
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether the range is unbounded on both ends
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// FilterParams is the caller-supplied scope shared by every predicate of a request
type FilterParams struct {
	HostelID    *int64
	Search      string
	DateRange   DateRange
	Category    CategoryScope
	PaymentType string
	Statuses    []string
}

// Equality is a field = value clause
type Equality struct {
	Field string
	Value any
}

// Membership is a field IN (values) clause
type Membership struct {
	Field  string
	Values []string
}

// PatternMatch is a case-insensitive substring clause over one field.
// Multiple patterns are OR-ed; a negated match is NULL-safe and AND-ed.
type PatternMatch struct {
	Field    string
	Patterns []string
	Negate   bool
}

// SearchClause ORs a substring match over Fields with IDField = RefID when a reference resolved
type SearchClause struct {
	Term    string
	Fields  []string
	IDField string
	RefID   *int64
}

// DateClause matches when any of Fields falls within [From, To]
type DateClause struct {
	Fields []string
	From   *time.Time
	To     *time.Time
}

// Predicate is a store-agnostic description of the rows of one entity kind a query selects
type Predicate struct {
	Kind     EntityKind
	Equals   []Equality
	In       []Membership
	Patterns []PatternMatch
	Search   *SearchClause
	Dates    *DateClause
}

// EntitySpec declares how filter parameters apply to one entity kind
type EntitySpec struct {
	Kind              EntityKind
	IDField           string
	HostelField       string
	CategoryField     string
	StatusField       string
	PaymentTypeField  string
	SearchFields      []string
	ReferencePrefixes []string
	DateFields        []string
	Fixed             []Equality
}

// ExpenseSpec describes expenses
var ExpenseSpec = EntitySpec{
	Kind:              KindExpense,
	IDField:           "expenses.id",
	HostelField:       "expenses.hostel_id",
	CategoryField:     "expenses.category",
	SearchFields:      []string{"expenses.title", "expenses.category", "expenses.type"},
	ReferencePrefixes: []string{PrefixExpense},
	DateFields:        []string{"expenses.date"},
}

// AlertSpec describes bill alerts
var AlertSpec = EntitySpec{
	Kind:              KindAlert,
	IDField:           "alerts.id",
	HostelField:       "alerts.hostel_id",
	StatusField:       "alerts.status",
	SearchFields:      []string{"alerts.title", "alerts.description", "tenants.name", "tenants.email"},
	ReferencePrefixes: []string{PrefixBill},
	DateFields:        []string{"alerts.due_date"},
	Fixed:             []Equality{{Field: "alerts.type", Value: "bill"}},
}

// VendorSpec describes active vendors
var VendorSpec = EntitySpec{
	Kind:              KindVendor,
	IDField:           "vendors.id",
	HostelField:       "vendors.hostel_id",
	SearchFields:      []string{"vendors.name", "vendors.company_name", "vendors.email"},
	ReferencePrefixes: []string{PrefixVendor},
	Fixed:             []Equality{{Field: "vendors.status", Value: "active"}},
}

// PaymentSpec describes tenant payments
var PaymentSpec = EntitySpec{
	Kind:              KindPayment,
	IDField:           "payments.id",
	HostelField:       "payments.hostel_id",
	StatusField:       "payments.status",
	PaymentTypeField:  "payments.payment_type",
	SearchFields:      []string{"payments.receipt_number", "tenants.name", "tenants.email"},
	ReferencePrefixes: PaymentReferencePrefixes(),
	DateFields:        []string{"payments.created_at", "payments.payment_date"},
}

// BuildPredicate applies params to spec. It never retains or mutates caller slices.
func BuildPredicate(spec EntitySpec, params FilterParams) Predicate {
	p := Predicate{Kind: spec.Kind}

	p.Equals = append(p.Equals, spec.Fixed...)
	if params.HostelID != nil && spec.HostelField != "" {
		p.Equals = append(p.Equals, Equality{Field: spec.HostelField, Value: *params.HostelID})
	}
	if spec.PaymentTypeField != "" {
		if pt := strings.TrimSpace(params.PaymentType); pt != "" {
			p.Equals = append(p.Equals, Equality{Field: spec.PaymentTypeField, Value: pt})
		}
	}

	if spec.StatusField != "" && len(params.Statuses) > 0 {
		values := make([]string, len(params.Statuses))
		copy(values, params.Statuses)
		p.In = append(p.In, Membership{Field: spec.StatusField, Values: values})
	}

	if spec.CategoryField != "" && params.Category != CategoryAny {
		patterns := CategoryPatterns(spec.Kind, CategoryLaundry)
		if len(patterns) > 0 {
			p.Patterns = append(p.Patterns, PatternMatch{
				Field:    spec.CategoryField,
				Patterns: patterns,
				Negate:   params.Category == CategoryExcludeLaundry,
			})
		}
	}

	if term := strings.TrimSpace(params.Search); term != "" && len(spec.SearchFields) > 0 {
		fields := make([]string, len(spec.SearchFields))
		copy(fields, spec.SearchFields)
		search := &SearchClause{Term: term, Fields: fields, IDField: spec.IDField}
		if id, ok := ResolveReference(term, spec.ReferencePrefixes); ok {
			search.RefID = &id
		}
		p.Search = search
	}

	if len(spec.DateFields) > 0 && !params.DateRange.IsZero() {
		fields := make([]string, len(spec.DateFields))
		copy(fields, spec.DateFields)
		p.Dates = &DateClause{Fields: fields, From: params.DateRange.From, To: params.DateRange.To}
	}

	return p
}

// ExpensePredicate builds the expense predicate for a category scope
func ExpensePredicate(params FilterParams, scope CategoryScope) Predicate {
	params.Category = scope
	return BuildPredicate(ExpenseSpec, params)
}

// AlertPredicate builds the bill alert predicate
func AlertPredicate(params FilterParams) Predicate {
	return BuildPredicate(AlertSpec, params)
}

// VendorPredicate builds the active vendor predicate
func VendorPredicate(params FilterParams) Predicate {
	return BuildPredicate(VendorSpec, params)
}

// PaymentPredicate builds the payment predicate for a set of raw statuses
func PaymentPredicate(params FilterParams, statuses []string) Predicate {
	params.Statuses = statuses
	return BuildPredicate(PaymentSpec, params)
}
