package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the sales charts and the summary card.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the dashboard summary
// @Summary Dashboard stats
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// SalesByItem returns total quantity sold per item, over all rows
// @Summary Overall sales chart
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/sales-by-item [get]
func (h *DashboardHandler) SalesByItem(c *gin.Context) {
	items, err := h.dashboardService.SalesByItem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales by item retrieved successfully", gin.H{"items": items})
}

// DailySales returns revenue per day for the trailing window, oldest first
// @Summary Daily sales chart
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window size in days (default 7, max 90)"
// @Success 200 {object} response.APIResponse
// @Router /dashboard/daily-sales [get]
func (h *DashboardHandler) DailySales(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = parsed
	}

	results, err := h.dashboardService.DailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily sales retrieved successfully", gin.H{"days": results})
}
