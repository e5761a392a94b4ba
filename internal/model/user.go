package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is the closed set of staff job functions used for authorization.
type UserRole string

const (
	RoleOwner     UserRole = "OWNER"
	RoleManager   UserRole = "MANAGER"
	RoleServer    UserRole = "SERVER"
	RoleHost      UserRole = "HOST"
	RoleChef      UserRole = "CHEF"
	RoleSommelier UserRole = "SOMMELIER"
)

// User represents a staff member who can authenticate against the system.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:char(36);not null;index"`
	LocationID   *uuid.UUID     `json:"location_id,omitempty" gorm:"type:char(36);index"` // nil when unassigned
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole       `json:"role" gorm:"type:varchar(20);not null;index"`
	IsActive     bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Tenant   Tenant    `json:"-" gorm:"foreignKey:TenantID"`
	Location *Location `json:"-" gorm:"foreignKey:LocationID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
