package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	joinHostels = "LEFT JOIN hostels ON hostels.id = %s.hostel_id"
	joinTenants = "LEFT JOIN tenants ON tenants.id = %s.tenant_id"
)

// ledgerTable maps an entity kind onto its table, amount column and display joins
type ledgerTable struct {
	name   string
	amount string
	status string
	joins  []string
}

var ledgerTables = map[ledger.EntityKind]ledgerTable{
	ledger.KindExpense: {
		name:   "expenses",
		amount: "expenses.amount",
		joins:  []string{fmt.Sprintf(joinHostels, "expenses")},
	},
	ledger.KindAlert: {
		name:   "alerts",
		amount: "alerts.amount",
		status: "alerts.status",
		joins:  []string{fmt.Sprintf(joinHostels, "alerts"), fmt.Sprintf(joinTenants, "alerts")},
	},
	ledger.KindVendor: {
		name:   "vendors",
		amount: "vendors.total_payable",
		status: "vendors.status",
		joins:  []string{fmt.Sprintf(joinHostels, "vendors")},
	},
	ledger.KindPayment: {
		name:   "payments",
		amount: "payments.amount",
		status: "payments.status",
		joins:  []string{fmt.Sprintf(joinHostels, "payments"), fmt.Sprintf(joinTenants, "payments")},
	},
}

// GormLedgerRepository implements ledger.Store using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

type aggregateRow struct {
	TotalAmount decimal.Decimal
	RowCount    int64
}

type statusAggregateRow struct {
	Status      string
	TotalAmount decimal.Decimal
	RowCount    int64
}

// Aggregate returns the sum and count of the kind's amount column over p
func (r *GormLedgerRepository) Aggregate(ctx context.Context, p ledger.Predicate) (ledger.Totals, error) {
	table, err := tableFor(p.Kind)
	if err != nil {
		return ledger.Totals{}, err
	}

	var result aggregateRow
	err = r.scoped(ctx, table, p).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0) AS total_amount, COUNT(*) AS row_count", table.amount)).
		Scan(&result).Error
	if err != nil {
		return ledger.Totals{}, fmt.Errorf("failed to aggregate %s: %w", table.name, err)
	}
	return ledger.Totals{Total: ledger.NormalizeAmount(result.TotalAmount), Count: result.RowCount}, nil
}

// AggregateByStatus returns per-status sums and counts over p
func (r *GormLedgerRepository) AggregateByStatus(ctx context.Context, p ledger.Predicate) ([]ledger.StatusTotal, error) {
	table, err := tableFor(p.Kind)
	if err != nil {
		return nil, err
	}
	if table.status == "" {
		return nil, fmt.Errorf("%s has no status column", table.name)
	}

	var rows []statusAggregateRow
	err = r.scoped(ctx, table, p).
		Select(fmt.Sprintf("%s AS status, COALESCE(SUM(%s), 0) AS total_amount, COUNT(*) AS row_count", table.status, table.amount)).
		Group(table.status).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s by status: %w", table.name, err)
	}

	totals := make([]ledger.StatusTotal, len(rows))
	for i, row := range rows {
		totals[i] = ledger.StatusTotal{
			Status: row.Status,
			Total:  ledger.NormalizeAmount(row.TotalAmount),
			Count:  row.RowCount,
		}
	}
	return totals, nil
}

// SumCapital sums the capital invested in every hostel, or one hostel when hostelID is set
func (r *GormLedgerRepository) SumCapital(ctx context.Context, hostelID *int64) (decimal.Decimal, error) {
	var result aggregateRow
	query := r.db.WithContext(ctx).Table("hostels")
	if hostelID != nil {
		query = query.Where("hostels.id = ?", *hostelID)
	}
	err := query.
		Select("COALESCE(SUM(hostels.capital_invested), 0) AS total_amount, COUNT(*) AS row_count").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum hostel capital: %w", err)
	}
	return ledger.NormalizeAmount(result.TotalAmount), nil
}

// FindExpenses returns a page of expenses ordered by date desc, id desc
func (r *GormLedgerRepository) FindExpenses(ctx context.Context, p ledger.Predicate, offset, limit int) ([]ledger.Expense, error) {
	var rows []models.ExpenseModel
	err := r.page(ctx, ledger.KindExpense, p, offset, limit).
		Select("expenses.*, hostels.name AS hostel_name").
		Order("expenses.date DESC").
		Order("expenses.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expenses: %w", err)
	}

	expenses := make([]ledger.Expense, len(rows))
	for i := range rows {
		expenses[i] = rows[i].ToDomain()
	}
	return expenses, nil
}

// FindAlerts returns a page of alerts ordered by created_at desc, id desc
func (r *GormLedgerRepository) FindAlerts(ctx context.Context, p ledger.Predicate, offset, limit int) ([]ledger.Alert, error) {
	var rows []models.AlertModel
	err := r.page(ctx, ledger.KindAlert, p, offset, limit).
		Select("alerts.*, hostels.name AS hostel_name, tenants.name AS tenant_name").
		Order("alerts.created_at DESC").
		Order("alerts.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find alerts: %w", err)
	}

	alerts := make([]ledger.Alert, len(rows))
	for i := range rows {
		alerts[i] = rows[i].ToDomain()
	}
	return alerts, nil
}

// FindVendors returns a page of vendors ordered by name, id
func (r *GormLedgerRepository) FindVendors(ctx context.Context, p ledger.Predicate, offset, limit int) ([]ledger.Vendor, error) {
	var rows []models.VendorModel
	err := r.page(ctx, ledger.KindVendor, p, offset, limit).
		Select("vendors.*, hostels.name AS hostel_name").
		Order("vendors.name ASC").
		Order("vendors.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vendors: %w", err)
	}

	vendors := make([]ledger.Vendor, len(rows))
	for i := range rows {
		vendors[i] = rows[i].ToDomain()
	}
	return vendors, nil
}

// FindPayments returns a page of payments ordered by payment_date desc, created_at desc, id desc
func (r *GormLedgerRepository) FindPayments(ctx context.Context, p ledger.Predicate, offset, limit int) ([]ledger.Payment, error) {
	var rows []models.PaymentModel
	err := r.page(ctx, ledger.KindPayment, p, offset, limit).
		Select("payments.*, hostels.name AS hostel_name, tenants.name AS tenant_name, tenants.email AS tenant_email").
		Order("payments.payment_date DESC").
		Order("payments.created_at DESC").
		Order("payments.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}

	payments := make([]ledger.Payment, len(rows))
	for i := range rows {
		payments[i] = rows[i].ToDomain()
	}
	return payments, nil
}

func (r *GormLedgerRepository) page(ctx context.Context, kind ledger.EntityKind, p ledger.Predicate, offset, limit int) *gorm.DB {
	if p.Kind == "" {
		p.Kind = kind
	}
	table := ledgerTables[kind]
	query := r.scoped(ctx, table, p)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query
}

// scoped builds the FROM/JOIN/WHERE part of a query for table
func (r *GormLedgerRepository) scoped(ctx context.Context, table ledgerTable, p ledger.Predicate) *gorm.DB {
	query := r.db.WithContext(ctx).Table(table.name)
	for _, join := range table.joins {
		query = query.Joins(join)
	}
	return applyPredicate(query, p)
}

func tableFor(kind ledger.EntityKind) (ledgerTable, error) {
	table, ok := ledgerTables[kind]
	if !ok {
		return ledgerTable{}, fmt.Errorf("unknown ledger entity kind %q", kind)
	}
	return table, nil
}

// applyPredicate translates a ledger predicate into WHERE clauses.
// Field names come from the static entity specs, never from user input.
func applyPredicate(query *gorm.DB, p ledger.Predicate) *gorm.DB {
	for _, eq := range p.Equals {
		query = query.Where(eq.Field+" = ?", eq.Value)
	}
	for _, in := range p.In {
		query = query.Where(in.Field+" IN ?", in.Values)
	}
	for _, pm := range p.Patterns {
		if sql, args := patternClause(pm); sql != "" {
			query = query.Where(sql, args...)
		}
	}
	if p.Search != nil {
		if sql, args := searchClause(*p.Search); sql != "" {
			query = query.Where(sql, args...)
		}
	}
	if p.Dates != nil {
		if sql, args := dateClause(*p.Dates); sql != "" {
			query = query.Where(sql, args...)
		}
	}
	return query
}

func patternClause(pm ledger.PatternMatch) (string, []any) {
	if len(pm.Patterns) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(pm.Patterns))
	args := make([]any, 0, len(pm.Patterns))
	for _, pattern := range pm.Patterns {
		if pm.Negate {
			// NULL categories are not laundry
			parts = append(parts, fmt.Sprintf("COALESCE(LOWER(%s), '') NOT LIKE ?", pm.Field))
		} else {
			parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ?", pm.Field))
		}
		args = append(args, "%"+strings.ToLower(pattern)+"%")
	}
	sep := " OR "
	if pm.Negate {
		sep = " AND "
	}
	return "(" + strings.Join(parts, sep) + ")", args
}

func searchClause(s ledger.SearchClause) (string, []any) {
	term := strings.TrimSpace(s.Term)
	if term == "" {
		return "", nil
	}
	like := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, 0, len(s.Fields)+1)
	args := make([]any, 0, len(s.Fields)+1)
	for _, field := range s.Fields {
		parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, field))
		args = append(args, like)
	}
	if s.RefID != nil && s.IDField != "" {
		parts = append(parts, s.IDField+" = ?")
		args = append(args, *s.RefID)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func dateClause(d ledger.DateClause) (string, []any) {
	if d.From == nil && d.To == nil {
		return "", nil
	}
	parts := make([]string, 0, len(d.Fields))
	var args []any
	for _, field := range d.Fields {
		switch {
		case d.From != nil && d.To != nil:
			parts = append(parts, fmt.Sprintf("(%s >= ? AND %s <= ?)", field, field))
			args = append(args, *d.From, *d.To)
		case d.From != nil:
			parts = append(parts, field+" >= ?")
			args = append(args, *d.From)
		default:
			parts = append(parts, field+" <= ?")
			args = append(args, *d.To)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
