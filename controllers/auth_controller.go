package controllers

import (
	"errors"
	"net/http"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/services"
	"github.com/alekz7/tastyrestaurant/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"omitempty,oneof=customer staff admin company"`
	CompanyName string `json:"companyName"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Service *services.AuthService }

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// มุมมอง user ที่ปลอดภัย (ไม่มี password hash หลุดแน่นอน)
func userView(u *entity.User) gin.H {
	v := gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
	if u.Company != nil {
		v["company"] = u.Company.Name
		v["companyId"] = u.Company.ID
	}
	return v
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	token, user, err := a.Service.Register(req.Name, req.Email, req.Password, req.Role, req.CompanyName)
	if errors.Is(err, services.ErrConflict) {
		resp.BadRequest(c, "user already exists")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userView(user)})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.BadRequest(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userView(user)})
}

// GET /api/auth/user (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userView(user))
}
