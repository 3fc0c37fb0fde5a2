package controllers

import (
	"errors"
	"strconv"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/services"
	"github.com/alekz7/tastyrestaurant/utils"
	"github.com/alekz7/tastyrestaurant/ws"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Hub     *ws.OrderHub
}

func NewOrderController(service *services.OrderService, hub *ws.OrderHub) *OrderController {
	return &OrderController{Service: service, Hub: hub}
}

func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		ID:        utils.CurrentUserID(c),
		Role:      utils.CurrentRole(c),
		CompanyID: utils.CurrentCompanyID(c),
	}
}

func orderItemView(it *entity.OrderItem) gin.H {
	return gin.H{
		"menuItemId": it.MenuItemID,
		"name":       it.Name,
		"price":      it.Price,
		"quantity":   it.Quantity,
		"notes":      it.Notes,
	}
}

func orderView(o *entity.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, orderItemView(&o.Items[i]))
	}
	children := make([]gin.H, 0, len(o.ChildOrders))
	for i := range o.ChildOrders {
		ch := &o.ChildOrders[i]
		children = append(children, gin.H{
			"id":         ch.ID,
			"user":       gin.H{"id": ch.User.ID, "name": ch.User.Name, "email": ch.User.Email},
			"totalPrice": ch.TotalPrice,
			"status":     ch.Status,
			"createdAt":  ch.CreatedAt,
		})
	}

	v := gin.H{
		"id":             o.ID,
		"items":          items,
		"totalPrice":     o.TotalPrice,
		"location":       o.Location,
		"status":         o.Status,
		"isCompanyOrder": o.IsCompanyOrder,
		"childOrders":    children,
		"user":           gin.H{"id": o.User.ID, "name": o.User.Name, "email": o.User.Email},
		"createdAt":      o.CreatedAt,
		"updatedAt":      o.UpdatedAt,
	}
	if o.PickupTime != nil {
		v["pickupTime"] = o.PickupTime
	}
	if o.ParentOrderID != nil {
		v["parentOrderId"] = *o.ParentOrderID
	}
	if o.Company != nil {
		v["company"] = gin.H{"id": o.Company.ID, "name": o.Company.Name}
	} else if o.CompanyID != nil {
		v["companyId"] = *o.CompanyID
	}
	return v
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	order, err := oc.Service.Create(currentActor(c), &req)
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		resp.BadRequest(c, err.Error())
		return
	case errors.Is(err, services.ErrParentNotFound):
		resp.NotFound(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, orderView(order))
}

// GET /api/orders → role-scoped list
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.ListForActor(currentActor(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	views := make([]gin.H, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}
	resp.OK(c, views)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	order, err := oc.Service.Detail(currentActor(c), uint(id))
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
		return
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not authorized to view this order")
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orderView(order))
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready completed cancelled"`
}

// PUT /api/orders/:id (staff/admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	order, err := oc.Service.UpdateStatus(uint(id), req.Status)
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	if oc.Hub != nil {
		oc.Hub.NotifyStatus(order.ID, order.Status, order.UpdatedAt)
	}
	resp.OK(c, orderView(order))
}

// GET /api/orders/company/:id (company/admin)
func (oc *OrderController) CompanyOrders(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "company not found")
		return
	}

	orders, err := oc.Service.CompanyOrders(currentActor(c), uint(id))
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not authorized to view these orders")
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	views := make([]gin.H, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}
	resp.OK(c, views)
}
