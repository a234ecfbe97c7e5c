package handler

import (
	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// TenantHandler handles tenant-related HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// CreateTenantRequest is the payload for tenant creation
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param payload body CreateTenantRequest true "Tenant payload"
// @Success 201 {object} utils.APIResponse{data=models.Tenant} "Tenant created"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err)
		return
	}

	tenant, err := h.tenantService.CreateTenant(req.Name)
	if err != nil {
		h.logger.WithError(err).WithField("name", req.Name).Error("Failed to create tenant")
		utils.InternalServerErrorResponse(c, "Failed to create tenant", err)
		return
	}

	utils.CreatedResponse(c, "Tenant created successfully", tenant)
}
