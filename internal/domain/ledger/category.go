package ledger

import "strings"

// EntityKind identifies the source table a ledger record comes from
type EntityKind string

const (
	KindExpense EntityKind = "expense"
	KindAlert   EntityKind = "alert"
	KindVendor  EntityKind = "vendor"
	KindPayment EntityKind = "payment"
)

// LedgerCategory is the closed set of categories every ledger record falls into
type LedgerCategory string

const (
	CategoryBill             LedgerCategory = "bill"
	CategoryVendorPayable    LedgerCategory = "vendor-payable"
	CategoryLaundry          LedgerCategory = "laundry"
	CategoryTenantReceivable LedgerCategory = "tenant-receivable"
)

// CategoryRule maps a raw category substring of one entity kind to a ledger category
type CategoryRule struct {
	Kind     EntityKind
	Pattern  string
	Category LedgerCategory
}

// categoryRules is evaluated in order; the first matching rule wins.
// The persistence layer builds its SQL category predicates from the same table.
var categoryRules = []CategoryRule{
	{Kind: KindExpense, Pattern: "laundry", Category: CategoryLaundry},
}

var defaultCategories = map[EntityKind]LedgerCategory{
	KindExpense: CategoryBill,
	KindAlert:   CategoryBill,
	KindVendor:  CategoryVendorPayable,
	KindPayment: CategoryTenantReceivable,
}

// Classify maps a raw record category of the given kind to its ledger category
func Classify(kind EntityKind, rawCategory string) LedgerCategory {
	lowered := strings.ToLower(rawCategory)
	for _, rule := range categoryRules {
		if rule.Kind == kind && strings.Contains(lowered, rule.Pattern) {
			return rule.Category
		}
	}
	if c, ok := defaultCategories[kind]; ok {
		return c
	}
	return CategoryBill
}

// CategoryPatterns returns the raw substrings that place a record of the given kind in category
func CategoryPatterns(kind EntityKind, category LedgerCategory) []string {
	var patterns []string
	for _, rule := range categoryRules {
		if rule.Kind == kind && rule.Category == category {
			patterns = append(patterns, rule.Pattern)
		}
	}
	return patterns
}

// View is a named slice of the ledger requested by a caller
type View string

const (
	ViewBills       View = "bills"
	ViewVendor      View = "vendor"
	ViewLaundry     View = "laundry"
	ViewAll         View = "all"
	ViewReceivables View = "receivables"
)

// ParsePayablesView parses a payables view name. Empty input selects bills.
func ParsePayablesView(s string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewBills:
		return ViewBills, true
	case ViewVendor:
		return ViewVendor, true
	case ViewLaundry:
		return ViewLaundry, true
	case ViewAll:
		return ViewAll, true
	}
	return "", false
}
