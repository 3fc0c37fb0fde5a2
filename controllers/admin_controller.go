package controllers

import (
	"strconv"

	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ UserRepo *repository.UserRepository }

func NewAdminController(userRepo *repository.UserRepository) *AdminController {
	return &AdminController{UserRepo: userRepo}
}

// GET /api/admin/users (admin)
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.UserRepo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		v := gin.H{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		}
		if u.Company != nil {
			v["company"] = u.Company.Name
		}
		views = append(views, v)
	}
	resp.OK(c, views)
}

// DELETE /api/admin/users/:id (admin) — hard delete
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}

	affected, err := ac.UserRepo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"message": "user removed"})
}
