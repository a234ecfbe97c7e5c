package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// ReportHandler handles statement reporting HTTP requests
type ReportHandler struct {
	statementService service.StatementService
	logger           *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(statementService service.StatementService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		statementService: statementService,
		logger:           logger,
	}
}

// GetVendorMonthlyStatement handles GET /api/v1/reports/vendor/:id/monthly
// @Summary Get a vendor's monthly statement
// @Description Get the cached or freshly computed total and CSV ledger for one vendor and calendar month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param year query int true "Statement year"
// @Param month query int true "Statement month (1-12)"
// @Success 200 {object} utils.APIResponse{data=response.MonthlyStatementResponse} "Statement retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reports/vendor/{id}/monthly [get]
func (h *ReportHandler) GetVendorMonthlyStatement(c *gin.Context) {
	vendorID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", err)
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid year parameter format", err)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid month parameter format", err)
		return
	}

	stmt, err := h.statementService.MonthlyStatement(c.Request.Context(), vendorID, year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			utils.BadRequestResponse(c, "Invalid statement period", err)
			return
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"vendor_id": vendorID,
			"year":      year,
			"month":     month,
		}).Error("Failed to get monthly statement")
		utils.InternalServerErrorResponse(c, "Failed to retrieve monthly statement", err)
		return
	}

	utils.SuccessResponse(c, "Monthly statement retrieved successfully", stmt)
}
