package handler

import (
	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles GET /api/v1/users
// @Summary List tenant users
// @Description List all users of the caller's tenant. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.User} "Users retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Insufficient permissions"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "Could not validate credentials")
		return
	}

	users, err := h.userService.ListUsersByTenant(user.TenantID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", user.TenantID).Error("Failed to list users")
		utils.InternalServerErrorResponse(c, "Failed to retrieve users", err)
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}
