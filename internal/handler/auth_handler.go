package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/models/response"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
	"tripbill-be-svc/pkg/utils"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// SignupRequest is the payload for user registration
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	TenantID uint   `json:"tenant_id" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/v1/auth/signup
// @Summary Register a user
// @Description Create a user under a tenant and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body SignupRequest true "User registration payload"
// @Success 201 {object} utils.APIResponse{data=response.TokenResponse} "User created"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err)
		return
	}

	_, token, err := h.userService.Signup(req.Email, req.Password, req.TenantID, req.Role)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to sign up user")
		utils.InternalServerErrorResponse(c, "Failed to create user", err)
		return
	}

	utils.CreatedResponse(c, "User created successfully", response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response.TokenResponse} "Logged in"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err)
		return
	}

	_, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Incorrect email or password")
			return
		}
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to log in user")
		utils.InternalServerErrorResponse(c, "Failed to log in", err)
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /api/v1/me
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=models.User} "Current user"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "Could not validate credentials")
		return
	}
	utils.SuccessResponse(c, "Current user retrieved successfully", user)
}
