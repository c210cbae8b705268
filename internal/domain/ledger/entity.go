package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a general hostel expense. A category containing "laundry" marks a laundry expense.
type Expense struct {
	ID         int64
	Title      string
	Category   string
	Type       string
	Amount     decimal.Decimal
	Date       time.Time
	HostelID   *int64
	HostelName string
	CreatedAt  time.Time
}

// Alert is an operational alert; only alerts of type "bill" take part in the ledger
type Alert struct {
	ID          int64
	Title       string
	Description string
	Amount      decimal.Decimal
	Status      string
	DueDate     *time.Time
	HostelID    *int64
	HostelName  string
	TenantID    *int64
	TenantName  string
	CreatedAt   time.Time
}

// Vendor is a supplier with a running payable balance
type Vendor struct {
	ID           int64
	Name         string
	CompanyName  string
	Email        string
	Category     string
	Status       string
	TotalPayable decimal.Decimal
	TotalPaid    decimal.Decimal
	Balance      decimal.Decimal
	PaymentTerms string
	HostelID     *int64
	HostelName   string
	CreatedAt    time.Time
}

// Payment is a tenant payment, the ledger's only receivable
type Payment struct {
	ID            int64
	Amount        decimal.Decimal
	PaymentType   string
	Status        string
	PaymentDate   *time.Time
	ReceiptNumber string
	HostelID      *int64
	HostelName    string
	TenantID      *int64
	TenantName    string
	TenantEmail   string
	CreatedAt     time.Time
}
