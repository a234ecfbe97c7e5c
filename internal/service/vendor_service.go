package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// VendorService defines the interface for vendor operations
type VendorService interface {
	CreateVendor(vendor *models.Vendor) (*models.Vendor, error)
	GetVendorByID(id uint) (*models.Vendor, error)
}

// vendorService implements VendorService
type vendorService struct {
	vendorRepo repository.VendorRepository
	logger     *logger.Logger
}

// NewVendorService creates a new instance of VendorService
func NewVendorService(vendorRepo repository.VendorRepository, logger *logger.Logger) VendorService {
	return &vendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// CreateVendor persists a new vendor with its billing model and config
func (s *vendorService) CreateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	if vendor.BillingConfig == nil {
		vendor.BillingConfig = models.RateConfig{}
	}
	if err := s.vendorRepo.CreateVendor(vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"vendor_id": vendor.ID,
		"tenant_id": vendor.TenantID,
		"model":     vendor.BillingModel,
	}).Info("Vendor created")

	return vendor, nil
}

// GetVendorByID retrieves a vendor by id
func (s *vendorService) GetVendorByID(id uint) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetVendorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrVendorNotFound, id)
		}
		return nil, err
	}
	return vendor, nil
}
