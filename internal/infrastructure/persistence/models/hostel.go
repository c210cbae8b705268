package models

import (
	"time"

	"github.com/hostel/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// HostelModel is the persistence model for a hostel property
type HostelModel struct {
	ID              int64               `gorm:"primaryKey"`
	Name            string              `gorm:"type:varchar(200);not null"`
	Address         string              `gorm:"type:varchar(500)"`
	CapitalInvested decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	TimestampModel
}

// TableName returns the table name for GORM
func (HostelModel) TableName() string {
	return "hostels"
}

// TenantModel is the persistence model for a hostel resident
type TenantModel struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(200);not null"`
	Email    string `gorm:"type:varchar(200);index"`
	Phone    string `gorm:"type:varchar(50)"`
	HostelID *int64 `gorm:"index"`
	TimestampModel
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ExpenseModel is the persistence model for a general expense
type ExpenseModel struct {
	ID         int64               `gorm:"primaryKey"`
	Title      string              `gorm:"type:varchar(200);not null"`
	Category   string              `gorm:"type:varchar(100);index"`
	Type       string              `gorm:"column:type;type:varchar(50)"`
	Amount     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Date       time.Time           `gorm:"not null;index"`
	HostelID   *int64              `gorm:"index"`
	HostelName string              `gorm:"->;-:migration"`
	TimestampModel
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a ledger expense
func (m *ExpenseModel) ToDomain() ledger.Expense {
	return ledger.Expense{
		ID:         m.ID,
		Title:      m.Title,
		Category:   m.Category,
		Type:       m.Type,
		Amount:     ledger.NormalizeAmount(m.Amount),
		Date:       m.Date,
		HostelID:   m.HostelID,
		HostelName: m.HostelName,
		CreatedAt:  m.CreatedAt,
	}
}

// AlertModel is the persistence model for an operational alert
type AlertModel struct {
	ID          int64               `gorm:"primaryKey"`
	Type        string              `gorm:"column:type;type:varchar(30);not null;index"`
	Title       string              `gorm:"type:varchar(200);not null"`
	Description string              `gorm:"type:text"`
	Amount      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Status      string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     *time.Time          `gorm:"index"`
	HostelID    *int64              `gorm:"index"`
	TenantID    *int64              `gorm:"index"`
	HostelName  string              `gorm:"->;-:migration"`
	TenantName  string              `gorm:"->;-:migration"`
	TimestampModel
}

// TableName returns the table name for GORM
func (AlertModel) TableName() string {
	return "alerts"
}

// ToDomain converts the persistence model to a ledger alert
func (m *AlertModel) ToDomain() ledger.Alert {
	return ledger.Alert{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Amount:      ledger.NormalizeAmount(m.Amount),
		Status:      m.Status,
		DueDate:     m.DueDate,
		HostelID:    m.HostelID,
		HostelName:  m.HostelName,
		TenantID:    m.TenantID,
		TenantName:  m.TenantName,
		CreatedAt:   m.CreatedAt,
	}
}

// VendorModel is the persistence model for a supplier account
type VendorModel struct {
	ID           int64               `gorm:"primaryKey"`
	Name         string              `gorm:"type:varchar(200);not null"`
	CompanyName  string              `gorm:"type:varchar(200)"`
	Email        string              `gorm:"type:varchar(200)"`
	Category     string              `gorm:"type:varchar(100)"`
	Status       string              `gorm:"type:varchar(20);not null;default:'active';index"`
	TotalPayable decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	TotalPaid    decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	Balance      decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	PaymentTerms string              `gorm:"type:varchar(100)"`
	HostelID     *int64              `gorm:"index"`
	HostelName   string              `gorm:"->;-:migration"`
	TimestampModel
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a ledger vendor
func (m *VendorModel) ToDomain() ledger.Vendor {
	return ledger.Vendor{
		ID:           m.ID,
		Name:         m.Name,
		CompanyName:  m.CompanyName,
		Email:        m.Email,
		Category:     m.Category,
		Status:       m.Status,
		TotalPayable: ledger.NormalizeAmount(m.TotalPayable),
		TotalPaid:    ledger.NormalizeAmount(m.TotalPaid),
		Balance:      ledger.NormalizeAmount(m.Balance),
		PaymentTerms: m.PaymentTerms,
		HostelID:     m.HostelID,
		HostelName:   m.HostelName,
		CreatedAt:    m.CreatedAt,
	}
}

// PaymentModel is the persistence model for a tenant payment
type PaymentModel struct {
	ID            int64               `gorm:"primaryKey"`
	Amount        decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	PaymentType   string              `gorm:"type:varchar(30);index"`
	Status        string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentDate   *time.Time          `gorm:"index"`
	ReceiptNumber *string             `gorm:"type:varchar(50)"`
	HostelID      *int64              `gorm:"index"`
	TenantID      *int64              `gorm:"index"`
	HostelName    string              `gorm:"->;-:migration"`
	TenantName    string              `gorm:"->;-:migration"`
	TenantEmail   string              `gorm:"->;-:migration"`
	TimestampModel
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a ledger payment
func (m *PaymentModel) ToDomain() ledger.Payment {
	p := ledger.Payment{
		ID:          m.ID,
		Amount:      ledger.NormalizeAmount(m.Amount),
		PaymentType: m.PaymentType,
		Status:      m.Status,
		PaymentDate: m.PaymentDate,
		HostelID:    m.HostelID,
		HostelName:  m.HostelName,
		TenantID:    m.TenantID,
		TenantName:  m.TenantName,
		TenantEmail: m.TenantEmail,
		CreatedAt:   m.CreatedAt,
	}
	if m.ReceiptNumber != nil {
		p.ReceiptNumber = *m.ReceiptNumber
	}
	return p
}
