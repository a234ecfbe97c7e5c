package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripbill-be-svc/internal/config"
	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// UserService defines the interface for user and auth operations
type UserService interface {
	Signup(email, password string, tenantID uint, role string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsersByTenant(tenantID uint) ([]*models.User, error)
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	logger   *logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, jwtCfg config.JWTConfig, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

// Signup creates a user with a bcrypt password hash and issues a token
func (s *userService) Signup(email, password string, tenantID uint, role string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = "employee"
	}

	user := &models.User{
		TenantID:       tenantID,
		Email:          email,
		HashedPassword: string(hash),
		Role:           role,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.WithField("email", email).WithField("tenant_id", tenantID).Info("User signed up")
	return user, token, nil
}

// Login verifies credentials and issues a token
func (s *userService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.WithField("email", email).Info("User logged in")
	return user, token, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetUserByEmail(email)
}

// ListUsersByTenant retrieves all users of a tenant
func (s *userService) ListUsersByTenant(tenantID uint) ([]*models.User, error) {
	return s.userRepo.ListUsersByTenant(tenantID)
}

// issueToken signs an HS256 access token carrying the subject email,
// tenant and role claims
func (s *userService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.Email,
		"tenant_id": user.TenantID,
		"role":      user.Role,
		"is_admin":  user.IsAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Duration(s.jwtCfg.ExpireMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
