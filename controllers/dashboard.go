package controllers

import (
	"net/http"

	"nailstudio-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	finance *services.FinanceService
}

func NewDashboardController(finance *services.FinanceService) *DashboardController {
	return &DashboardController{finance: finance}
}

// GetDashboardOverview returns totals, month growth and the agenda
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	d, err := dc.finance.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetClients returns one summary per client phone, filtered by ?search=
func (dc *DashboardController) GetClients(c *gin.Context) {
	list, err := dc.finance.Clients(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve clients")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCalendar returns appointment counts per day of ?month=YYYY-MM
func (dc *DashboardController) GetCalendar(c *gin.Context) {
	days, err := dc.finance.CalendarMonth(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondServiceError(c, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, days)
}
