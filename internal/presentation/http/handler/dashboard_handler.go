package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	period := service.Period(c.DefaultQuery("period", string(service.PeriodWeek)))

	stats, err := h.dashboardService.GetStats(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
