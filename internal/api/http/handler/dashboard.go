package handler

import (
	"net/http"
	"time"

	"github.com/entnt/dentalcare-server/internal/api/http/middleware"
	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/service"
	"github.com/gin-gonic/gin"
)

// dayLayout is the query-parameter date format of the calendar view.
const dayLayout = "2006-01-02"

// Dashboard serves the aggregated dashboard and calendar read surface.
type Dashboard struct {
	clinic *service.Clinic
	logger *logger.Logger
}

// NewDashboard creates a new Dashboard handler.
func NewDashboard(clinic *service.Clinic, logger *logger.Logger) *Dashboard {
	return &Dashboard{clinic: clinic, logger: logger}
}

// Stats returns the role-scoped dashboard summary.
func (h *Dashboard) Stats(c *gin.Context) {
	caller, _ := middleware.Caller(c)
	response.JSON(c, http.StatusOK, true, "dashboard", h.clinic.DashboardStats(caller, time.Now()))
}

// Calendar returns appointments in [from, to). Defaults to the current
// month when the range is omitted; on=<day> selects a single day instead.
func (h *Dashboard) Calendar(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	if raw := c.Query("on"); raw != "" {
		day, err := time.Parse(dayLayout, raw)
		if err != nil {
			response.JSON(c, http.StatusBadRequest, false, "invalid on date", nil)
			return
		}
		response.JSON(c, http.StatusOK, true, "calendar", h.clinic.AppointmentsOn(caller, day))
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			response.JSON(c, http.StatusBadRequest, false, "invalid from date", nil)
			return
		}
		from = parsed
		to = from.AddDate(0, 1, 0)
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			response.JSON(c, http.StatusBadRequest, false, "invalid to date", nil)
			return
		}
		to = parsed
	}

	response.JSON(c, http.StatusOK, true, "calendar", h.clinic.AppointmentsBetween(caller, from, to))
}
