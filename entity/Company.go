package entity

import (
	"gorm.io/gorm"
)

type Company struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`

	Users  []User  `json:"-"`
	Orders []Order `json:"-"`
}
