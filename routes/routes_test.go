package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alekz7/tastyrestaurant/configs"
	"github.com/alekz7/tastyrestaurant/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Company{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine, name, email, role, companyName string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "password123",
		"role": role, "companyName": companyName,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Description: name, Price: price, Category: "Main Course", Active: true}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestAuthFlow(t *testing.T) {
	r, _ := setupRouter(t)

	token := register(t, r, "Alice", "alice@example.com", "", "")

	// me
	w := doJSON(t, r, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.Equal(t, "customer", data["role"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)

	// email ซ้ำ
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice2", "email": "alice@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login ผิดรหัส
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login ถูก
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["token"])

	// ไม่มี token
	w = doJSON(t, r, http.MethodGet, "/api/auth/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompanyRegistrationCreatesCompany(t *testing.T) {
	r, db := setupRouter(t)

	register(t, r, "Acme Rep", "rep@acmecorp.com", "company", "Acme Corp")

	var co entity.Company
	require.NoError(t, db.Where("name = ?", "Acme Corp").First(&co).Error)
	assert.Equal(t, "Acme Rep", co.ContactName)

	var u entity.User
	require.NoError(t, db.Where("email = ?", "rep@acmecorp.com").First(&u).Error)
	require.NotNil(t, u.CompanyID)
	assert.Equal(t, co.ID, *u.CompanyID)
}

func TestOrderEndpoints(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Grilled Salmon", 1000)

	alice := register(t, r, "Alice", "alice@example.com", "", "")
	bob := register(t, r, "Bob", "bob@example.com", "", "")
	staff := register(t, r, "Staff User", "staff@example.com", "staff", "")

	// สร้างออเดอร์ A×2 downtown → $20.00
	w := doJSON(t, r, http.MethodPost, "/api/orders", alice, gin.H{
		"items":    []gin.H{{"menuItemId": item.ID, "quantity": 2}},
		"location": "downtown",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2000), data["totalPrice"])
	assert.Equal(t, "pending", data["status"])
	orderID := uint(data["id"].(float64))

	// validation: quantity ศูนย์
	w = doJSON(t, r, http.MethodPost, "/api/orders", alice, gin.H{
		"items":    []gin.H{{"menuItemId": item.ID, "quantity": 0}},
		"location": "downtown",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// validation: location ผิด
	w = doJSON(t, r, http.MethodPost, "/api/orders", alice, gin.H{
		"items":    []gin.H{{"menuItemId": item.ID, "quantity": 1}},
		"location": "midtown",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// เมนูไม่มีจริง → ทั้งออเดอร์ล้ม
	w = doJSON(t, r, http.MethodPost, "/api/orders", alice, gin.H{
		"items":    []gin.H{{"menuItemId": item.ID + 99, "quantity": 1}},
		"location": "downtown",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// เจ้าของดูได้ คนอื่นโดน 403
	detailPath := fmt.Sprintf("/api/orders/%d", orderID)
	w = doJSON(t, r, http.MethodGet, detailPath, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, detailPath, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// id ไม่มีจริง → 404 ไม่ใช่ 403
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID+999), alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// customer เปลี่ยนสถานะไม่ได้
	w = doJSON(t, r, http.MethodPut, detailPath, alice, gin.H{"status": "ready"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// staff ตั้ง ready ได้ total/items คงเดิม
	w = doJSON(t, r, http.MethodPut, detailPath, staff, gin.H{"status": "ready"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "ready", data["status"])
	assert.Equal(t, float64(2000), data["totalPrice"])

	w = doJSON(t, r, http.MethodGet, detailPath, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "ready", data["status"])

	// สถานะนอก enum → 400
	w = doJSON(t, r, http.MethodPut, detailPath, staff, gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// list ถูก scope ตาม role
	w = doJSON(t, r, http.MethodGet, "/api/orders", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 0)
	w = doJSON(t, r, http.MethodGet, "/api/orders", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 1)
}

func TestCompanyOrderFlow(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Veggie Burger", 1499)

	rep := register(t, r, "Acme Rep", "rep@acmecorp.com", "company", "Acme Corp")
	employee := register(t, r, "Employee", "employee@example.com", "", "")

	// parent company order
	w := doJSON(t, r, http.MethodPost, "/api/orders", rep, gin.H{
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": 1}},
		"location":       "downtown",
		"isCompanyOrder": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	parent := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, true, parent["isCompanyOrder"])
	parentID := uint(parent["id"].(float64))

	// child order อ้าง parent
	w = doJSON(t, r, http.MethodPost, "/api/orders", employee, gin.H{
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": 2}},
		"location":       "downtown",
		"companyOrderId": parentID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	child := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(parentID), child["parentOrderId"])
	assert.Equal(t, float64(2*1499), child["totalPrice"])

	// parent เห็นลูก 1 ราย ยอดลูกถูกต้อง
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", parentID), rep, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	children := data["childOrders"].([]any)
	require.Len(t, children, 1)
	assert.Equal(t, float64(2*1499), children[0].(map[string]any)["totalPrice"])

	// parent ไม่มีจริง → 404
	w = doJSON(t, r, http.MethodPost, "/api/orders", employee, gin.H{
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": 1}},
		"location":       "downtown",
		"companyOrderId": parentID + 500,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyReportAuthorization(t *testing.T) {
	r, db := setupRouter(t)
	seedItem(t, db, "Tiramisu", 799)

	rep := register(t, r, "Acme Rep", "rep@acmecorp.com", "company", "Acme Corp")
	register(t, r, "Tech Rep", "rep@techstart.com", "company", "TechStart Inc")

	var acme, techstart entity.Company
	require.NoError(t, db.Where("name = ?", "Acme Corp").First(&acme).Error)
	require.NoError(t, db.Where("name = ?", "TechStart Inc").First(&techstart).Error)

	// บริษัทตัวเอง → 200
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reports/company/%d", acme.ID), rep, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["totalOrders"])

	// บริษัทอื่น → 403
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reports/company/%d", techstart.ID), rep, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSalesReportAdminOnly(t *testing.T) {
	r, _ := setupRouter(t)

	customer := register(t, r, "Alice", "alice@example.com", "", "")
	admin := register(t, r, "Admin User", "admin@example.com", "admin", "")

	w := doJSON(t, r, http.MethodGet, "/api/reports/sales", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reports/sales?startDate=2024-01-01&endDate=2024-01-31", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["totalOrders"])
	period := data["period"].(map[string]any)
	assert.Equal(t, "2024-01-01", period["startDate"])
}

func TestMenuEndpoints(t *testing.T) {
	r, db := setupRouter(t)
	seedItem(t, db, "Caesar Salad", 999)

	admin := register(t, r, "Admin User", "admin@example.com", "admin", "")
	customer := register(t, r, "Alice", "alice@example.com", "", "")

	// public list
	w := doJSON(t, r, http.MethodGet, "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 1)

	// customer สร้างเมนูไม่ได้
	w = doJSON(t, r, http.MethodPost, "/api/menu", customer, gin.H{
		"name": "New Dish", "description": "d", "price": 1200, "category": "Main Course", "image": "http://img",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin สร้างได้
	w = doJSON(t, r, http.MethodPost, "/api/menu", admin, gin.H{
		"name": "New Dish", "description": "d", "price": 1200, "category": "Main Course", "image": "http://img",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// categories
	w = doJSON(t, r, http.MethodGet, "/api/menu/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Main Course"}, decode(t, w)["data"])

	// unknown id → 404
	w = doJSON(t, r, http.MethodGet, "/api/menu/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyUsersEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	rep := register(t, r, "Acme Rep", "rep@acmecorp.com", "company", "Acme Corp")
	register(t, r, "Tech Rep", "rep@techstart.com", "company", "TechStart Inc")
	admin := register(t, r, "Admin User", "admin@example.com", "admin", "")

	var acme, techstart entity.Company
	require.NoError(t, db.Where("name = ?", "Acme Corp").First(&acme).Error)
	require.NoError(t, db.Where("name = ?", "TechStart Inc").First(&techstart).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/companies/%d/users", acme.ID), rep, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 1)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/companies/%d/users", techstart.ID), rep, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// unknown id → 404 ก่อน 403
	w = doJSON(t, r, http.MethodGet, "/api/companies/9999/users", rep, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/companies/%d/users", acme.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminUserManagement(t *testing.T) {
	r, db := setupRouter(t)

	register(t, r, "Alice", "alice@example.com", "", "")
	admin := register(t, r, "Admin User", "admin@example.com", "admin", "")

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 2)

	var alice entity.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&alice).Error)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", alice.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// hard delete จริง
	var count int64
	db.Unscoped().Model(&entity.User{}).Where("email = ?", "alice@example.com").Count(&count)
	assert.Zero(t, count)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", alice.ID), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
