package repository

import (
	"github.com/alekz7/tastyrestaurant/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /menu → เฉพาะเมนูที่ active เรียงตามหมวด
func (r *MenuRepository) ListActive() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("active = ?", true).Order("category ASC").Find(&items).Error
	return items, err
}

// GET /menu/categories
func (r *MenuRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&entity.MenuItem{}).
		Where("active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// batch lookup สำหรับคิดราคาออเดอร์
func (r *MenuRepository) FindByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
