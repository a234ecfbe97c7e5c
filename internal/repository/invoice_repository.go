package repository

import (
	"time"

	"tripbill-be-svc/internal/models"

	"gorm.io/gorm"
)

// InvoiceRepository defines the interface for invoice row data operations
type InvoiceRepository interface {
	InsertInvoiceRow(row *models.InvoiceRow) error
	FindByVendorAndDateRange(vendorID uint, start, end time.Time) ([]*models.InvoiceRow, error)
	SumAmountByTenantSince(tenantID uint, since time.Time) (float64, error)
}

// invoiceRepository implements InvoiceRepository
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// InsertInvoiceRow persists a new invoice row; gorm fills the generated
// id and creation timestamp on the passed struct
func (r *invoiceRepository) InsertInvoiceRow(row *models.InvoiceRow) error {
	return r.db.Create(row).Error
}

// FindByVendorAndDateRange retrieves invoice rows of a vendor whose
// creation timestamp falls in the half-open window [start, end)
func (r *invoiceRepository) FindByVendorAndDateRange(vendorID uint, start, end time.Time) ([]*models.InvoiceRow, error) {
	var rows []*models.InvoiceRow
	err := r.db.
		Where("vendor_id = ?", vendorID).
		Where("created_at >= ?", start).
		Where("created_at < ?", end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SumAmountByTenantSince sums invoice amounts of a tenant created on or
// after the given instant
func (r *invoiceRepository) SumAmountByTenantSince(tenantID uint, since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.InvoiceRow{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("tenant_id = ?", tenantID).
		Where("created_at >= ?", since).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
