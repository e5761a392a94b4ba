package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supplier represents a vendor that inventory is purchased from.
type Supplier struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Contact   string    `json:"contact" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// InventoryItem represents a stocked ingredient, wine, or beverage.
type InventoryItem struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID     uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	SupplierID   uuid.UUID       `json:"supplier_id" gorm:"type:char(36);index"`
	Name         string          `json:"name" gorm:"size:255;not null;index"`
	Category     string          `json:"category" gorm:"size:50;not null;index"` // wine, beverage, food
	Unit         string          `json:"unit" gorm:"size:20;not null"`
	CurrentStock decimal.Decimal `json:"current_stock" gorm:"type:decimal(20,2);not null;default:0"`
	MinStock     decimal.Decimal `json:"min_stock" gorm:"type:decimal(20,2);not null;default:0"`
	UnitCost     decimal.Decimal `json:"unit_cost" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	WineDetail *WineDetail `json:"wine_detail,omitempty" gorm:"foreignKey:InventoryItemID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// WineDetail carries cellar metadata for wine inventory items.
type WineDetail struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	InventoryItemID uuid.UUID `json:"inventory_item_id" gorm:"type:char(36);not null;uniqueIndex"`
	Vintage         string    `json:"vintage" gorm:"size:10"`
	Region          string    `json:"region" gorm:"size:255"`
	Varietal        string    `json:"varietal" gorm:"size:255"`
	BinLocation     string    `json:"bin_location" gorm:"size:50"`
	TastingNotes    string    `json:"tasting_notes" gorm:"size:1024"`
	PairingNotes    string    `json:"pairing_notes" gorm:"size:1024"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (w *WineDetail) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// StockMovement records an inventory level change (delivery, usage, adjustment).
type StockMovement struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID        uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id" gorm:"type:char(36);not null;index"`
	Type            string          `json:"type" gorm:"size:20;not null"` // in, out, adjustment
	Quantity        decimal.Decimal `json:"quantity" gorm:"type:decimal(20,2);not null"`
	Reason          string          `json:"reason" gorm:"size:255"`
	PerformedBy     uuid.UUID       `json:"performed_by" gorm:"type:char(36);index"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
