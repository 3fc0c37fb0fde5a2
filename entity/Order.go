package entity

import (
	"time"

	"gorm.io/gorm"
)

// Pickup locations
const (
	LocationDowntown = "downtown"
	LocationUptown   = "uptown"
)

// Order statuses
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	TotalPrice int64  `json:"totalPrice"` // cents, snapshot at creation
	Location   string `gorm:"not null" json:"location"`
	Status     string `gorm:"not null;default:pending" json:"status"`

	PickupTime *time.Time `json:"pickupTime,omitempty"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	CompanyID      *uint    `json:"companyId,omitempty"`
	Company        *Company `json:"-"`
	IsCompanyOrder bool     `gorm:"default:false" json:"isCompanyOrder"`

	// company order tree: children are derived from ParentOrderID, so the
	// back-reference cannot duplicate or dangle
	ParentOrderID *uint   `json:"parentOrderId,omitempty"`
	ChildOrders   []Order `gorm:"foreignKey:ParentOrderID" json:"-"`

	Items []OrderItem `json:"-"`
}
