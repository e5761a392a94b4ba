package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusFired     OrderStatus = "FIRED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// CourseType represents the dining course an order course belongs to.
type CourseType string

const (
	CourseAmuseBouche CourseType = "AMUSE_BOUCHE"
	CourseAppetizer   CourseType = "APPETIZER"
	CourseMain        CourseType = "MAIN"
	CourseCheese      CourseType = "CHEESE"
	CourseDessert     CourseType = "DESSERT"
)

// Order represents a table's dining session.
type Order struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID   uuid.UUID      `json:"tenant_id" gorm:"type:char(36);not null;index"`
	TableID    uuid.UUID      `json:"table_id" gorm:"type:char(36);not null;index"`
	ServerID   uuid.UUID      `json:"server_id" gorm:"type:char(36);not null;index"`
	Status     OrderStatus    `json:"status" gorm:"type:varchar(20);not null;default:'OPEN';index"`
	GuestCount int            `json:"guest_count" gorm:"not null"`
	OpenedAt   time.Time      `json:"opened_at" gorm:"not null"`
	ClosedAt   *time.Time     `json:"closed_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Courses []OrderCourse `json:"courses,omitempty" gorm:"foreignKey:OrderID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderCourse represents one course of an order, routed to a kitchen station.
type OrderCourse struct {
	ID               uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID         uuid.UUID  `json:"tenant_id" gorm:"type:char(36);not null;index"`
	OrderID          uuid.UUID  `json:"order_id" gorm:"type:char(36);not null;index"`
	CourseType       CourseType `json:"course_type" gorm:"type:varchar(20);not null"`
	KitchenStationID uuid.UUID  `json:"kitchen_station_id" gorm:"type:char(36);index"`
	FiredAt          *time.Time `json:"fired_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relations
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderCourseID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *OrderCourse) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// OrderItem represents a single menu item on a course.
type OrderItem struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	TenantID      uuid.UUID  `json:"tenant_id" gorm:"type:char(36);not null;index"`
	OrderCourseID uuid.UUID  `json:"order_course_id" gorm:"type:char(36);not null;index"`
	MenuItemID    uuid.UUID  `json:"menu_item_id" gorm:"type:char(36);not null;index"`
	Quantity      int        `json:"quantity" gorm:"not null;default:1"`
	SpecialNotes  string     `json:"special_notes,omitempty" gorm:"size:512"`
	PreparedAt    *time.Time `json:"prepared_at,omitempty"`
	ServedAt      *time.Time `json:"served_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
