package repository

import (
	"tripbill-be-svc/internal/models"

	"gorm.io/gorm"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	CreateVendor(vendor *models.Vendor) error
	GetVendorByID(id uint) (*models.Vendor, error)
	ListVendorIDs() ([]uint, error)
	CountVendorsByTenant(tenantID uint) (int64, error)
}

// vendorRepository implements VendorRepository
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new instance of VendorRepository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// CreateVendor persists a new vendor
func (r *vendorRepository) CreateVendor(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// GetVendorByID retrieves a vendor by primary key
func (r *vendorRepository) GetVendorByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// ListVendorIDs retrieves the ids of all vendors
func (r *vendorRepository) ListVendorIDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Vendor{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountVendorsByTenant counts all vendors of a tenant
func (r *vendorRepository) CountVendorsByTenant(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
