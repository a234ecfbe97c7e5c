package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// TripHandler handles trip-related HTTP requests
type TripHandler struct {
	tripService service.TripService
	logger      *logger.Logger
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService service.TripService, logger *logger.Logger) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
	}
}

// CreateTripRequest is the payload for trip ingestion
type CreateTripRequest struct {
	TenantID        uint           `json:"tenant_id" binding:"required"`
	VendorID        uint           `json:"vendor_id" binding:"required"`
	EmployeeID      uint           `json:"employee_id" binding:"required"`
	DistanceKM      float64        `json:"distance_km"`
	DurationMinutes int            `json:"duration_minutes"`
	Date            time.Time      `json:"date" binding:"required"`
	ExtraKM         float64        `json:"extra_km"`
	ExtraHours      float64        `json:"extra_hours"`
	Payload         models.JSONMap `json:"payload"`
}

// CreateTrip handles POST /api/v1/trips
// @Summary Ingest a trip
// @Description Persist a trip and bill it against the vendor's rate model
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse{data=models.Trip} "Trip created and billed"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 404 {object} utils.APIResponse "Vendor not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err)
		return
	}

	trip, err := h.tripService.CreateTrip(&models.Trip{
		TenantID:        req.TenantID,
		VendorID:        req.VendorID,
		EmployeeID:      req.EmployeeID,
		DistanceKM:      req.DistanceKM,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
		ExtraKM:         req.ExtraKM,
		ExtraHours:      req.ExtraHours,
		Payload:         req.Payload,
	})
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			utils.NotFoundResponse(c, "Vendor not found")
			return
		}
		h.logger.WithError(err).WithField("vendor_id", req.VendorID).Error("Failed to create trip")
		utils.InternalServerErrorResponse(c, "Failed to create trip", err)
		return
	}

	utils.CreatedResponse(c, "Trip created successfully", trip)
}

// ListTrips handles GET /api/v1/trips
// @Summary List tenant trips
// @Description List trips of the caller's tenant. Non-admins only see their own trips; admins may filter by user_id.
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Optional user filter (admin only)"
// @Success 200 {object} utils.APIResponse{data=[]models.Trip} "Trips retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid user ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "Could not validate credentials")
		return
	}

	var employeeID *uint
	if user.IsAdmin {
		if userIDStr := c.Query("user_id"); userIDStr != "" {
			userID, err := strconv.ParseUint(userIDStr, 10, 32)
			if err != nil {
				utils.BadRequestResponse(c, "Invalid user ID", err)
				return
			}
			id := uint(userID)
			employeeID = &id
		}
	} else {
		employeeID = &user.ID
	}

	trips, err := h.tripService.ListTripsByTenant(user.TenantID, employeeID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", user.TenantID).Error("Failed to list trips")
		utils.InternalServerErrorResponse(c, "Failed to retrieve trips", err)
		return
	}

	utils.SuccessResponse(c, "Trips retrieved successfully", trips)
}
