package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tripbill-be-svc/internal/billing"
	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// BillingService defines the interface for billing business operations
type BillingService interface {
	BillTrip(trip *models.Trip) (*models.InvoiceRow, error)
}

// billingService implements BillingService
type billingService struct {
	vendorRepo  repository.VendorRepository
	invoiceRepo repository.InvoiceRepository
	logger      *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(vendorRepo repository.VendorRepository, invoiceRepo repository.InvoiceRepository, logger *logger.Logger) BillingService {
	return &billingService{
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// BillTrip resolves the trip's vendor, evaluates its rate model against
// the trip measurements and persists one invoice row. The trip must
// already be persisted. There is no dedup: billing the same trip twice
// writes two rows. A persistence failure propagates unchanged.
func (s *billingService) BillTrip(trip *models.Trip) (*models.InvoiceRow, error) {
	vendor, err := s.vendorRepo.GetVendorByID(trip.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithField("vendor_id", trip.VendorID).Error("Vendor not found for trip billing")
			return nil, fmt.Errorf("%w: id %d", ErrVendorNotFound, trip.VendorID)
		}
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}

	amount := billing.Evaluate(vendor.BillingModel, vendor.BillingConfig, trip)

	row := &models.InvoiceRow{
		TenantID: trip.TenantID,
		VendorID: trip.VendorID,
		TripID:   trip.ID,
		Amount:   amount,
		Note:     "auto",
	}
	if err := s.invoiceRepo.InsertInvoiceRow(row); err != nil {
		return nil, fmt.Errorf("failed to insert invoice row: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"trip_id":   trip.ID,
		"vendor_id": trip.VendorID,
		"model":     vendor.BillingModel,
		"amount":    amount,
	}).Info("Trip billed successfully")

	return row, nil
}
