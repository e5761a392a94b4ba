package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift represents a scheduled work period for a staff member.
type Shift struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null"`
	StartAt   time.Time `json:"start_at" gorm:"not null;index"`
	EndAt     time.Time `json:"end_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
