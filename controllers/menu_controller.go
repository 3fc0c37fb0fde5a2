package controllers

import (
	"errors"
	"strconv"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /api/menu (public)
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/categories (public)
func (mc *MenuController) Categories(c *gin.Context) {
	categories, err := mc.Repo.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /api/menu/:id (public)
func (mc *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	item, err := mc.Repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

type CreateMenuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Active      *bool  `json:"active"`
}

// POST /api/menu (admin)
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Active:      active,
	}
	if err := mc.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateMenuItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Active      *bool   `json:"active"`
}

// PUT /api/menu/:id (admin) — partial update
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	var req UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	if _, err := mc.Repo.FindByID(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	} else if err != nil {
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := mc.Repo.Update(uint(id), updates); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	item, err := mc.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id (admin) — hard delete;
// ออเดอร์เก่าไม่กระทบเพราะ line item เก็บ snapshot ชื่อ/ราคาไว้เอง
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	affected, err := mc.Repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"message": "menu item removed"})
}
