package services

import (
	"errors"
	"time"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	Items          []OrderItemIn `json:"items" binding:"required,min=1"`
	Location       string        `json:"location" binding:"required,oneof=downtown uptown"`
	PickupTime     *time.Time    `json:"pickupTime"`
	CompanyOrderID *uint         `json:"companyOrderId"`
	IsCompanyOrder bool          `json:"isCompanyOrder"`
}

// ----- Create -----

// Create คิดราคาจาก catalog จริง (snapshot ชื่อ/ราคา) แล้วผูกเข้า company order ถ้ามี
func (s *OrderService) Create(actor Actor, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	// batch lookup ครั้งเดียว แล้วเทียบจำนวน id ที่ขอกับที่เจอ
	seen := make(map[uint]bool, len(req.Items))
	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}
	menuItems, err := s.MenuRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(menuItems) != len(ids) {
		return nil, ErrMenuItemNotFound
	}
	byID := make(map[uint]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	// snapshot ชื่อ/ราคา ณ เวลาสั่ง กันราคาเมนูเปลี่ยนย้อนหลัง
	var total int64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		m := byID[it.MenuItemID]
		items = append(items, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
		total += m.Price * int64(it.Quantity)
	}

	order := entity.Order{
		UserID:     actor.ID,
		Items:      items,
		TotalPrice: total,
		Location:   req.Location,
		Status:     entity.StatusPending,
		PickupTime: req.PickupTime,
	}

	// company order aggregation
	if req.CompanyOrderID != nil {
		parent, err := s.Repo.GetOrder(*req.CompanyOrderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		// ลูกสืบ company จาก parent; back-reference ของ parent เป็น relation
		// จาก parent_order_id จึงไม่ต้อง patch parent แยกอีกขั้น
		order.CompanyID = parent.CompanyID
		order.ParentOrderID = &parent.ID
	} else if req.IsCompanyOrder && actor.Role == RoleCompany {
		order.IsCompanyOrder = true
		order.CompanyID = actor.CompanyID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- List & Detail -----

// ListForActor คืนรายการตาม role (customer เห็นของตัวเอง, company เห็นของ
// บริษัท+ของตัวเอง, staff/admin เห็นทั้งหมด)
func (s *OrderService) ListForActor(actor Actor) ([]entity.Order, error) {
	switch actor.Role {
	case RoleCustomer:
		return s.Repo.ListForUser(actor.ID)
	case RoleCompany:
		if actor.CompanyID == nil {
			return s.Repo.ListForUser(actor.ID)
		}
		return s.Repo.ListForCompanyActor(*actor.CompanyID, actor.ID)
	default:
		return s.Repo.ListAll()
	}
}

// Detail เช็คสิทธิ์ซ้ำหลังโหลด (scoping ขึ้นกับเนื้อ order)
func (s *OrderService) Detail(actor Actor, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderDetail(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanViewOrder(actor, o) {
		return nil, ErrForbidden
	}
	return o, nil
}

// UpdateStatus ไม่มี state machine: staff/admin ตั้งค่า enum ไหนก็ได้
// และ cancel ไม่ cascade ไปลูกออเดอร์
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	_, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	return s.Repo.GetOrderDetail(orderID)
}

// CompanyOrders: company ดูได้เฉพาะบริษัทตัวเอง, admin ดูได้ทุกบริษัท
func (s *OrderService) CompanyOrders(actor Actor, companyID uint) ([]entity.Order, error) {
	if !CanViewCompany(actor, companyID) {
		return nil, ErrForbidden
	}
	return s.Repo.ListCompanyOrders(companyID)
}
