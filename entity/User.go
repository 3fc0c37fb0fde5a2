package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	CompanyID *uint    `json:"companyId,omitempty"`
	Company   *Company `json:"-"`

	Orders []Order `json:"-"`
}
