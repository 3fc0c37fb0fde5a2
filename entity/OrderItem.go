package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name     string `json:"name"`  // snapshot of the menu item name at order time
	Price    int64  `json:"price"` // snapshot of the unit price at order time, cents
	Quantity int    `gorm:"not null" json:"quantity"`
	Notes    string `json:"notes"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการเมนู
}
