package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location represents a physical restaurant site belonging to a tenant.
type Location struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID      `json:"tenant_id" gorm:"type:char(36);not null;index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Address   string         `json:"address" gorm:"size:512"`
	IsActive  bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Tenant Tenant `json:"-" gorm:"foreignKey:TenantID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
