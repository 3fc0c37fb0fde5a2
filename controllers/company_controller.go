package controllers

import (
	"errors"
	"strconv"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/repository"
	"github.com/alekz7/tastyrestaurant/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompanyController struct {
	Repo     *repository.CompanyRepository
	UserRepo *repository.UserRepository
}

func NewCompanyController(repo *repository.CompanyRepository, userRepo *repository.UserRepository) *CompanyController {
	return &CompanyController{Repo: repo, UserRepo: userRepo}
}

// GET /api/companies (admin)
func (cc *CompanyController) List(c *gin.Context) {
	companies, err := cc.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, companies)
}

// GET /api/companies/:id (admin หรือ user ของบริษัทนั้น)
// โหลดก่อนค่อยเช็คสิทธิ์: id ที่ไม่มีจริงได้ 404 เสมอ ไม่หลุดว่าบริษัทไหนมีตัวตน
func (cc *CompanyController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "company not found")
		return
	}
	company, err := cc.Repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "company not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if !services.CanViewCompany(currentActor(c), company.ID) {
		resp.Forbidden(c, "not authorized to view this company")
		return
	}
	resp.OK(c, company)
}

type CreateCompanyReq struct {
	Name         string `json:"name" binding:"required"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// POST /api/companies (admin)
func (cc *CompanyController) Create(c *gin.Context) {
	var req CreateCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	count, err := cc.Repo.CountByName(req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.BadRequest(c, "company already exists")
		return
	}

	company := entity.Company{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
	}
	if err := cc.Repo.Create(&company); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, company)
}

type UpdateCompanyReq struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
}

// PUT /api/companies/:id (admin) — partial update
func (cc *CompanyController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "company not found")
		return
	}
	var req UpdateCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	if _, err := cc.Repo.FindByID(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "company not found")
		return
	} else if err != nil {
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Zip != nil {
		updates["zip"] = *req.Zip
	}

	if len(updates) > 0 {
		if err := cc.Repo.Update(uint(id), updates); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	company, err := cc.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, company)
}

// GET /api/companies/:id/users (admin หรือ user ของบริษัทนั้น)
func (cc *CompanyController) Users(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "company not found")
		return
	}
	company, err := cc.Repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "company not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if !services.CanViewCompany(currentActor(c), company.ID) {
		resp.Forbidden(c, "not authorized to view this company")
		return
	}

	users, err := cc.UserRepo.ListByCompany(company.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}
