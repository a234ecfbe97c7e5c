package repository

import (
	"tripbill-be-svc/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	ListUsersByTenant(tenantID uint) ([]*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user
func (r *userRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByEmail retrieves a user by email
func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsersByTenant retrieves all users of a tenant ordered by email
func (r *userRepository) ListUsersByTenant(tenantID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("tenant_id = ?", tenantID).Order("email").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
