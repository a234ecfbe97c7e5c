package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService service.VendorService
	logger        *logger.Logger
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService service.VendorService, logger *logger.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger,
	}
}

// CreateVendorRequest is the payload for vendor creation
type CreateVendorRequest struct {
	TenantID      uint              `json:"tenant_id" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	BillingModel  string            `json:"billing_model" binding:"required"`
	BillingConfig models.RateConfig `json:"billing_config"`
}

// CreateVendor handles POST /api/v1/vendors
// @Summary Create a vendor
// @Description Create a vendor with its billing model and rate configuration
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreateVendorRequest true "Vendor payload"
// @Success 201 {object} utils.APIResponse{data=models.Vendor} "Vendor created"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err)
		return
	}

	vendor, err := h.vendorService.CreateVendor(&models.Vendor{
		TenantID:      req.TenantID,
		Name:          req.Name,
		BillingModel:  req.BillingModel,
		BillingConfig: req.BillingConfig,
	})
	if err != nil {
		h.logger.WithError(err).WithField("name", req.Name).Error("Failed to create vendor")
		utils.InternalServerErrorResponse(c, "Failed to create vendor", err)
		return
	}

	utils.CreatedResponse(c, "Vendor created successfully", vendor)
}

// GetVendor handles GET /api/v1/vendors/:id
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Success 200 {object} utils.APIResponse{data=models.Vendor} "Vendor retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid vendor ID"
// @Failure 404 {object} utils.APIResponse "Vendor not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", err)
		return
	}

	vendor, err := h.vendorService.GetVendorByID(id)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			utils.NotFoundResponse(c, "Vendor not found")
			return
		}
		h.logger.WithError(err).WithField("vendor_id", id).Error("Failed to get vendor")
		utils.InternalServerErrorResponse(c, "Failed to retrieve vendor", err)
		return
	}

	utils.SuccessResponse(c, "Vendor retrieved successfully", vendor)
}
