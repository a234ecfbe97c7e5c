package repository

import (
	"tripbill-be-svc/internal/models"

	"gorm.io/gorm"
)

// TenantRepository defines the interface for tenant data operations
type TenantRepository interface {
	CreateTenant(tenant *models.Tenant) error
	GetTenantByID(id uint) (*models.Tenant, error)
}

// tenantRepository implements TenantRepository
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// CreateTenant persists a new tenant
func (r *tenantRepository) CreateTenant(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetTenantByID retrieves a tenant by primary key
func (r *tenantRepository) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}
