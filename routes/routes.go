package routes

import (
	"github.com/alekz7/tastyrestaurant/configs"
	"github.com/alekz7/tastyrestaurant/controllers"
	"github.com/alekz7/tastyrestaurant/middlewares"
	"github.com/alekz7/tastyrestaurant/repository"
	"github.com/alekz7/tastyrestaurant/services"
	"github.com/alekz7/tastyrestaurant/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, companyRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)
	reportSvc := services.NewReportService(orderRepo, companyRepo)

	// Realtime order tracking
	hub := ws.NewOrderHub(orderSvc)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	companyCtrl := controllers.NewCompanyController(companyRepo, userRepo)
	reportCtrl := controllers.NewReportController(reportSvc)
	adminCtrl := controllers.NewAdminController(userRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")
	staffOrAdmin := middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin")
	companyOrAdmin := middlewares.AuthMiddleware(cfg.JWTSecret, "company", "admin")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/user", auth, authCtrl.Me)
	}

	// Menu (อ่าน public, เขียน admin)
	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/categories", menuCtrl.Categories)
		menu.GET("/:id", menuCtrl.Detail)
		menu.POST("", adminOnly, menuCtrl.Create)
		menu.PUT("/:id", adminOnly, menuCtrl.Update)
		menu.DELETE("/:id", adminOnly, menuCtrl.Delete)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("", auth, orderCtrl.Create)
		orders.GET("", auth, orderCtrl.List)
		orders.GET("/company/:id", companyOrAdmin, orderCtrl.CompanyOrders)
		orders.GET("/:id", auth, orderCtrl.Detail)
		orders.PUT("/:id", staffOrAdmin, orderCtrl.UpdateStatus)
	}

	// Companies
	companies := api.Group("/companies")
	{
		companies.GET("", adminOnly, companyCtrl.List)
		companies.GET("/:id", auth, companyCtrl.Detail)
		companies.POST("", adminOnly, companyCtrl.Create)
		companies.PUT("/:id", adminOnly, companyCtrl.Update)
		companies.GET("/:id/users", auth, companyCtrl.Users)
	}

	// Reports
	reports := api.Group("/reports")
	{
		reports.GET("/sales", adminOnly, reportCtrl.Sales)
		reports.GET("/company/:id", auth, reportCtrl.Company)
	}

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/users", adminCtrl.Users)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}

	// WS order tracking
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
