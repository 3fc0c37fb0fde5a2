package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/alekz7/tastyrestaurant/pkg/resp"
	"github.com/alekz7/tastyrestaurant/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Service *services.ReportService }

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

// รับ ISO date ("2006-01-02") หรือ RFC3339 เต็ม
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func reportPeriod(startDate, endDate string) services.Period {
	p := services.Period{StartDate: startDate, EndDate: endDate}
	if p.StartDate == "" {
		p.StartDate = "All time"
	}
	if p.EndDate == "" {
		p.EndDate = "Present"
	}
	return p
}

// GET /api/reports/sales (admin)
func (rc *ReportController) Sales(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	location := c.Query("location")

	start, err := parseDate(startDate)
	if err != nil {
		resp.BadRequest(c, "invalid startDate")
		return
	}
	end, err := parseDate(endDate)
	if err != nil {
		resp.BadRequest(c, "invalid endDate")
		return
	}

	report, err := rc.Service.SalesReport(start, end, location, reportPeriod(startDate, endDate))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/reports/company/:id (admin หรือ company ของตัวเอง)
// สิทธิ์ตัดสินจาก path id ได้เลย ไม่ต้องโหลดบริษัทก่อน
func (rc *ReportController) Company(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "company not found")
		return
	}

	if !services.CanViewCompany(currentActor(c), uint(id)) {
		resp.Forbidden(c, "not authorized to access this report")
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	start, err := parseDate(startDate)
	if err != nil {
		resp.BadRequest(c, "invalid startDate")
		return
	}
	end, err := parseDate(endDate)
	if err != nil {
		resp.BadRequest(c, "invalid endDate")
		return
	}

	report, err := rc.Service.CompanyReport(uint(id), start, end, reportPeriod(startDate, endDate))
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "company not found")
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}
