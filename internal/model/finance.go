package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialSetting holds per-tenant tax and service-charge configuration.
type FinancialSetting struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID          uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;uniqueIndex"`
	TaxRate           decimal.Decimal `json:"tax_rate" gorm:"type:decimal(6,4);not null;default:0"`
	ServiceChargeRate decimal.Decimal `json:"service_charge_rate" gorm:"type:decimal(6,4);not null;default:0"`
	Currency          string          `json:"currency" gorm:"size:3;not null;default:'USD'"`
	RoundingStrategy  string          `json:"rounding_strategy" gorm:"size:20;not null;default:'ROUND_HALF_UP'"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FinancialSetting) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BusinessDay represents one operating day that orders are booked against.
type BusinessDay struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:char(36);not null;index"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'OPEN'"` // OPEN, CLOSED
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *BusinessDay) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// EndOfDayClose records the cash reconciliation at the end of a business day.
type EndOfDayClose struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID       uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	BusinessDayID  uuid.UUID       `json:"business_day_id" gorm:"type:char(36);not null;uniqueIndex"`
	ClosedByUserID uuid.UUID       `json:"closed_by_user_id" gorm:"type:char(36);not null"`
	TotalSales     decimal.Decimal `json:"total_sales" gorm:"type:decimal(20,2);not null"`
	CashExpected   decimal.Decimal `json:"cash_expected" gorm:"type:decimal(20,2);not null"`
	CashActual     decimal.Decimal `json:"cash_actual" gorm:"type:decimal(20,2);not null"`
	Discrepancy    decimal.Decimal `json:"discrepancy" gorm:"type:decimal(20,2);not null"`
	Notes          string          `json:"notes" gorm:"size:1024"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *EndOfDayClose) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
