package services

import (
	"errors"
	"time"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/repository"
	"gorm.io/gorm"
)

type ReportService struct {
	orderRepo   *repository.OrderRepository
	companyRepo *repository.CompanyRepository
}

func NewReportService(orderRepo *repository.OrderRepository, companyRepo *repository.CompanyRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo, companyRepo: companyRepo}
}

// ----- shared shapes -----

type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ReportOrderRow struct {
	ID         uint      `json:"id"`
	User       string    `json:"user"`
	Company    string    `json:"company,omitempty"`
	TotalPrice int64     `json:"totalPrice"`
	Date       time.Time `json:"date"`
}

// ----- sales report -----

type LocationBreakdown struct {
	OrderCount int              `json:"orderCount"`
	TotalSales int64            `json:"totalSales"`
	Orders     []ReportOrderRow `json:"orders"`
}

type SalesSummary struct {
	TotalOrders int   `json:"totalOrders"`
	TotalSales  int64 `json:"totalSales"`
}

type SalesReport struct {
	Period            Period                        `json:"period"`
	Summary           SalesSummary                  `json:"summary"`
	LocationBreakdown map[string]*LocationBreakdown `json:"locationBreakdown"`
}

// BuildSalesReport เป็น pure fold: ไม่เช็คสิทธิ์ ไม่แตะ DB
func BuildSalesReport(orders []entity.Order, period Period) *SalesReport {
	report := &SalesReport{
		Period:            period,
		LocationBreakdown: make(map[string]*LocationBreakdown),
	}

	for _, o := range orders {
		lb := report.LocationBreakdown[o.Location]
		if lb == nil {
			lb = &LocationBreakdown{Orders: []ReportOrderRow{}}
			report.LocationBreakdown[o.Location] = lb
		}

		row := ReportOrderRow{
			ID:         o.ID,
			User:       o.User.Name,
			TotalPrice: o.TotalPrice,
			Date:       o.CreatedAt,
		}
		if o.Company != nil {
			row.Company = o.Company.Name
		}

		lb.OrderCount++
		lb.TotalSales += o.TotalPrice
		lb.Orders = append(lb.Orders, row)

		report.Summary.TotalOrders++
		report.Summary.TotalSales += o.TotalPrice
	}
	return report
}

func (s *ReportService) SalesReport(start, end *time.Time, location string, period Period) (*SalesReport, error) {
	orders, err := s.orderRepo.ListForSalesReport(start, end, location)
	if err != nil {
		return nil, err
	}
	return BuildSalesReport(orders, period), nil
}

// ----- company report -----

type ChildOrderRow struct {
	ID         uint      `json:"id"`
	User       string    `json:"user"`
	TotalPrice int64     `json:"totalPrice"`
	Date       time.Time `json:"date"`
}

type MonthlyOrderRow struct {
	ID               uint      `json:"id"`
	User             string    `json:"user"`
	TotalPrice       int64     `json:"totalPrice"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	ChildOrdersCount int       `json:"childOrdersCount"`
}

type MonthlyBreakdown struct {
	OrderCount int               `json:"orderCount"`
	TotalSpent int64             `json:"totalSpent"`
	Orders     []MonthlyOrderRow `json:"orders"`
}

type CompanyOrderRow struct {
	ID          uint            `json:"id"`
	User        string          `json:"user"`
	TotalPrice  int64           `json:"totalPrice"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	Status      string          `json:"status"`
	ChildOrders []ChildOrderRow `json:"childOrders"`
}

type CompanySummary struct {
	TotalOrders int   `json:"totalOrders"`
	TotalSpent  int64 `json:"totalSpent"`
}

type CompanyInfo struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type CompanyReport struct {
	Company          CompanyInfo                  `json:"company"`
	Period           Period                       `json:"period"`
	Summary          CompanySummary               `json:"summary"`
	MonthlyBreakdown map[string]*MonthlyBreakdown `json:"monthlyBreakdown"`
	Orders           []CompanyOrderRow            `json:"orders"`
}

// monthKey: จัดกลุ่มรายเดือนด้วย UTC เสมอ กัน key เพี้ยนตาม locale ของเครื่อง
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// BuildCompanyReport เป็น pure fold เช่นกัน
func BuildCompanyReport(company *entity.Company, orders []entity.Order, period Period) *CompanyReport {
	report := &CompanyReport{
		Company: CompanyInfo{
			ID:           company.ID,
			Name:         company.Name,
			ContactName:  company.ContactName,
			ContactEmail: company.ContactEmail,
			ContactPhone: company.ContactPhone,
		},
		Period:           period,
		MonthlyBreakdown: make(map[string]*MonthlyBreakdown),
		Orders:           []CompanyOrderRow{},
	}

	for _, o := range orders {
		month := monthKey(o.CreatedAt)
		mb := report.MonthlyBreakdown[month]
		if mb == nil {
			mb = &MonthlyBreakdown{Orders: []MonthlyOrderRow{}}
			report.MonthlyBreakdown[month] = mb
		}

		mb.OrderCount++
		mb.TotalSpent += o.TotalPrice
		mb.Orders = append(mb.Orders, MonthlyOrderRow{
			ID:               o.ID,
			User:             o.User.Name,
			TotalPrice:       o.TotalPrice,
			Date:             o.CreatedAt,
			Location:         o.Location,
			Status:           o.Status,
			ChildOrdersCount: len(o.ChildOrders),
		})

		children := make([]ChildOrderRow, 0, len(o.ChildOrders))
		for _, ch := range o.ChildOrders {
			children = append(children, ChildOrderRow{
				ID:         ch.ID,
				User:       ch.User.Name,
				TotalPrice: ch.TotalPrice,
				Date:       ch.CreatedAt,
			})
		}
		report.Orders = append(report.Orders, CompanyOrderRow{
			ID:          o.ID,
			User:        o.User.Name,
			TotalPrice:  o.TotalPrice,
			Date:        o.CreatedAt,
			Location:    o.Location,
			Status:      o.Status,
			ChildOrders: children,
		})

		report.Summary.TotalOrders++
		report.Summary.TotalSpent += o.TotalPrice
	}
	return report
}

// CompanyReport: สิทธิ์ถูกเช็คที่ controller ตาม policy, ที่นี่เช็คแค่ว่าบริษัทมีจริง
func (s *ReportService) CompanyReport(companyID uint, start, end *time.Time, period Period) (*CompanyReport, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListForCompanyReport(companyID, start, end)
	if err != nil {
		return nil, err
	}
	return BuildCompanyReport(company, orders, period), nil
}
