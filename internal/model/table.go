package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableStatus represents the current state of a dining table.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "AVAILABLE"
	TableStatusSeated    TableStatus = "SEATED"
	TableStatusReserved  TableStatus = "RESERVED"
	TableStatusCleaning  TableStatus = "CLEANING"
)

// Table represents a dining table with its floor-plan geometry.
type Table struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID   uuid.UUID      `json:"tenant_id" gorm:"type:char(36);not null;index"`
	LocationID uuid.UUID      `json:"location_id" gorm:"type:char(36);not null;index"`
	Name       string         `json:"name" gorm:"size:100;not null"`
	Capacity   int            `json:"capacity" gorm:"not null"`
	Status     TableStatus    `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// KitchenStation represents a prep station that order courses are routed to.
type KitchenStation struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID   uuid.UUID `json:"tenant_id" gorm:"type:char(36);not null;index"`
	LocationID uuid.UUID `json:"location_id" gorm:"type:char(36);not null;index"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (k *KitchenStation) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
