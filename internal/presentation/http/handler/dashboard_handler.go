package handler

import (
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/application/service"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	invoiceService   *service.InvoiceService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, invoiceService *service.InvoiceService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		invoiceService:   invoiceService,
	}
}

// GetStats returns dashboard statistics for the current contractor
// @Summary Dashboard Statistics
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	// Refresh overdue flags so the counts reflect reality; a failure here
	// leaves the stats slightly stale but does not fail the request
	_, _ = h.invoiceService.MarkOverdueInvoices(c.Request.Context())

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved", stats)
}
