package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/alekz7/tastyrestaurant/services"
	"github.com/alekz7/tastyrestaurant/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub กระจายสถานะออเดอร์แบบ realtime ให้ client ที่ติดตามอยู่
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.OrderService
}

// Subscription = การติดตามออเดอร์ (1 connection ต่อ 1 order)
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

// StatusEvent = เหตุการณ์สถานะเปลี่ยนที่ส่งให้ทุก client ของออเดอร์นั้น
type StatusEvent struct {
	OrderID   uint      `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewOrderHub(service *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyStatus เรียกจาก path ที่อัปเดตสถานะ (best-effort fan-out)
func (h *OrderHub) NotifyStatus(orderID uint, status string, updatedAt time.Time) {
	h.broadcast <- StatusEvent{OrderID: orderID, Status: status, UpdatedAt: updatedAt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	actor := services.Actor{
		ID:        utils.CurrentUserID(c),
		Role:      utils.CurrentRole(c),
		CompanyID: utils.CurrentCompanyID(c),
	}

	// สิทธิ์เดียวกับ GET /orders/:id
	if _, err := h.service.Detail(actor, uint(id)); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: uint(id)}
	h.register <- sub

	// read loop มีไว้แค่จับตอน client ปิด connection
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
