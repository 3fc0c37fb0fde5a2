package repository

import (
	"github.com/alekz7/tastyrestaurant/entity"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) ListAll() ([]entity.Company, error) {
	var companies []entity.Company
	err := r.DB.Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) FindByID(id uint) (*entity.Company, error) {
	var co entity.Company
	if err := r.DB.First(&co, id).Error; err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *CompanyRepository) FindByName(name string) (*entity.Company, error) {
	var co entity.Company
	if err := r.DB.Where("name = ?", name).First(&co).Error; err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *CompanyRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Company{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *CompanyRepository) Create(co *entity.Company) error {
	return r.DB.Create(co).Error
}

func (r *CompanyRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Company{}).Where("id = ?", id).Updates(updates).Error
}
