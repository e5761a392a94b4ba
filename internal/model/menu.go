package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu represents a versioned menu for a tenant.
type Menu struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID      `json:"tenant_id" gorm:"type:char(36);not null;index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Version   int            `json:"version" gorm:"not null;default:1"`
	IsActive  bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Sections []MenuSection `json:"sections,omitempty" gorm:"foreignKey:MenuID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MenuSection represents an ordered group of items within a menu.
type MenuSection struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:char(36);not null;index"`
	MenuID    uuid.UUID `json:"menu_id" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Position  int       `json:"position" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items []MenuItem `json:"items,omitempty" gorm:"foreignKey:SectionID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *MenuSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// MenuItem represents a sellable dish with its price.
type MenuItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID    uuid.UUID       `json:"tenant_id" gorm:"type:char(36);not null;index"`
	SectionID   uuid.UUID       `json:"section_id" gorm:"type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"size:1024"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0"`
	IsAvailable bool            `json:"is_available" gorm:"default:true;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
