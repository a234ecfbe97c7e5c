package handler

import (
	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardSummary handles GET /api/v1/dashboard/summary
// @Summary Get the tenant dashboard summary
// @Description Get the current-month invoice total, vendor count and trip count for the caller's tenant
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.DashboardSummaryResponse} "Successfully retrieved dashboard summary"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetDashboardSummary(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "Could not validate credentials")
		return
	}

	summary, err := h.dashboardService.GetDashboardSummary(user.TenantID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", user.TenantID).Error("Failed to get dashboard summary")
		utils.InternalServerErrorResponse(c, "Failed to retrieve dashboard summary", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard summary retrieved successfully", summary)
}
