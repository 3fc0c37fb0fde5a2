package services

import (
	"github.com/alekz7/tastyrestaurant/entity"
)

// Actor คือข้อมูลผู้เรียกจาก JWT
type Actor struct {
	ID        uint
	Role      string
	CompanyID *uint
}

// Roles
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
	RoleCompany  = "company"
)

// CanViewOrder ตัดสินสิทธิ์หลังโหลด order แล้ว (เช็คจากเนื้อ resource ไม่ใช่แค่ route)
func CanViewOrder(a Actor, o *entity.Order) bool {
	switch a.Role {
	case RoleAdmin, RoleStaff:
		return true
	case RoleCustomer:
		return o.UserID == a.ID
	case RoleCompany:
		if o.UserID == a.ID {
			return true
		}
		return o.CompanyID != nil && a.CompanyID != nil && *o.CompanyID == *a.CompanyID
	default:
		return false
	}
}

// CanMutateOrderStatus: staff/admin เท่านั้น
func CanMutateOrderStatus(a Actor) bool {
	return a.Role == RoleStaff || a.Role == RoleAdmin
}

// CanViewCompany ใช้ได้ทั้ง company detail, roster และ report
func CanViewCompany(a Actor, companyID uint) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.CompanyID != nil && *a.CompanyID == companyID
}
