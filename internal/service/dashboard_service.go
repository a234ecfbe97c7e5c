package service

import (
	"fmt"
	"math"
	"time"

	"tripbill-be-svc/internal/models/response"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// DashboardService defines the interface for tenant dashboard operations
type DashboardService interface {
	GetDashboardSummary(tenantID uint) (*response.DashboardSummaryResponse, error)
}

// dashboardService implements DashboardService. Summaries are always
// computed live, never cached.
type dashboardService struct {
	invoiceRepo repository.InvoiceRepository
	vendorRepo  repository.VendorRepository
	tripRepo    repository.TripRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(invoiceRepo repository.InvoiceRepository, vendorRepo repository.VendorRepository, tripRepo repository.TripRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		invoiceRepo: invoiceRepo,
		vendorRepo:  vendorRepo,
		tripRepo:    tripRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetDashboardSummary returns the tenant's invoice total since the first
// of the current month, its vendor count and its all-time trip count.
// The trip count carries the "pending" name from the dashboard even
// though trips have no billing-status flag.
func (s *dashboardService) GetDashboardSummary(tenantID uint) (*response.DashboardSummaryResponse, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	total, err := s.invoiceRepo.SumAmountByTenantSince(tenantID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum invoice amounts: %w", err)
	}

	vendors, err := s.vendorRepo.CountVendorsByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vendors: %w", err)
	}

	pending, err := s.tripRepo.CountTripsByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}

	summary := &response.DashboardSummaryResponse{
		MonthlyTotal: math.Round(total*100) / 100,
		Vendors:      vendors,
		Pending:      pending,
	}

	s.logger.WithFields(map[string]interface{}{
		"tenant_id":     tenantID,
		"monthly_total": summary.MonthlyTotal,
		"vendors":       vendors,
		"pending":       pending,
	}).Info("Dashboard summary computed")

	return summary, nil
}
