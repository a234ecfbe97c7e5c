package service

import (
	"fmt"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// TenantService defines the interface for tenant operations
type TenantService interface {
	CreateTenant(name string) (*models.Tenant, error)
}

// tenantService implements TenantService
type tenantService struct {
	tenantRepo repository.TenantRepository
	logger     *logger.Logger
}

// NewTenantService creates a new instance of TenantService
func NewTenantService(tenantRepo repository.TenantRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// CreateTenant persists a new tenant
func (s *tenantService) CreateTenant(name string) (*models.Tenant, error) {
	tenant := &models.Tenant{Name: name}
	if err := s.tenantRepo.CreateTenant(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.WithField("tenant_id", tenant.ID).WithField("name", name).Info("Tenant created")
	return tenant, nil
}
