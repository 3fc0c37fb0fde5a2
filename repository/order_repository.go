package repository

import (
	"time"

	"github.com/alekz7/tastyrestaurant/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

// POST /orders → สร้าง order พร้อมรายการในตัว (single transaction)
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id → order พร้อม user, company, items และลูกออเดอร์
func (r *OrderRepository) GetOrderDetail(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("User").
		Preload("Company").
		Preload("Items").
		Preload("ChildOrders").
		Preload("ChildOrders.User").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) listQuery() *gorm.DB {
	return r.DB.
		Preload("User").
		Preload("Company").
		Preload("Items").
		Preload("ChildOrders").
		Preload("ChildOrders.User").
		Order("created_at DESC")
}

// GET /orders (customer) → ออเดอร์ของตัวเอง
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.listQuery().Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

// GET /orders (company) → ออเดอร์บริษัทของตัวเอง + ออเดอร์ส่วนตัว
func (r *OrderRepository) ListForCompanyActor(companyID, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.listQuery().
		Where("(company_id = ? AND is_company_order = ?) OR user_id = ?", companyID, true, userID).
		Find(&orders).Error
	return orders, err
}

// GET /orders (staff/admin) → ทั้งหมด
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.listQuery().Find(&orders).Error
	return orders, err
}

// GET /orders/company/:id → company order ของบริษัท พร้อมลูกออเดอร์
func (r *OrderRepository) ListCompanyOrders(companyID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.listQuery().
		Where("company_id = ? AND is_company_order = ?", companyID, true).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

// ---------------- Reports ----------------

// ช่วงวันที่ inclusive ทั้งสองด้าน
func applyDateRange(db *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		db = db.Where("created_at >= ?", *start)
	}
	if end != nil {
		db = db.Where("created_at <= ?", *end)
	}
	return db
}

// GET /reports/sales
func (r *OrderRepository) ListForSalesReport(start, end *time.Time, location string) ([]entity.Order, error) {
	db := r.DB.Preload("User").Preload("Company").Order("created_at DESC")
	db = applyDateRange(db, start, end)
	if location != "" {
		db = db.Where("location = ?", location)
	}
	var orders []entity.Order
	err := db.Find(&orders).Error
	return orders, err
}

// GET /reports/company/:id
func (r *OrderRepository) ListForCompanyReport(companyID uint, start, end *time.Time) ([]entity.Order, error) {
	db := r.DB.
		Preload("User").
		Preload("ChildOrders").
		Preload("ChildOrders.User").
		Where("company_id = ?", companyID).
		Order("created_at DESC")
	db = applyDateRange(db, start, end)
	var orders []entity.Order
	err := db.Find(&orders).Error
	return orders, err
}
