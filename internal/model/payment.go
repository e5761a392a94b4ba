package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod represents how a guest settled the bill.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodCash PaymentMethod = "CASH"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment represents a settlement against an order.
type Payment struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Method    PaymentMethod   `json:"method" gorm:"type:varchar(20);not null"`
	Status    PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TipMethod represents how a tip was collected.
type TipMethod string

const (
	TipMethodAddedToBill TipMethod = "ADDED_TO_BILL"
	TipMethodCash        TipMethod = "CASH"
)

// Tip represents a gratuity attributed to a server.
type Tip struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	ServerID  uuid.UUID       `json:"server_id" gorm:"type:char(36);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Method    TipMethod       `json:"method" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
