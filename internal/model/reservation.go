package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusSeated    ReservationStatus = "SEATED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusNoShow    ReservationStatus = "NO_SHOW"
)

// Reservation represents a guest booking against a table.
type Reservation struct {
	ID         uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID   uuid.UUID         `json:"tenant_id" gorm:"type:char(36);not null;index"`
	TableID    uuid.UUID         `json:"table_id" gorm:"type:char(36);not null;index"`
	GuestName  string            `json:"guest_name" gorm:"size:255;not null"`
	GuestEmail string            `json:"guest_email" gorm:"size:255"`
	GuestPhone string            `json:"guest_phone" gorm:"size:50"`
	GuestCount int               `json:"guest_count" gorm:"not null"`
	ReservedAt time.Time         `json:"reserved_at" gorm:"not null;index"`
	Status     ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
