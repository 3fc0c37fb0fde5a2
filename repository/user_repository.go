package repository

import (
	"github.com/alekz7/tastyrestaurant/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Company").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Company").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GET /admin/users → ทุก user พร้อมชื่อบริษัท
func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Preload("Company").Order("name ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByCompany(companyID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("company_id = ?", companyID).Order("name ASC").Find(&users).Error
	return users, err
}

// hard delete
func (r *UserRepository) Delete(id uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&entity.User{}, id)
	return res.RowsAffected, res.Error
}
