package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbill-be-svc/internal/models"
)

func TestDashboardSummary(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	invoiceRepo := newFakeInvoiceRepo(
		// before the current month: excluded
		&models.InvoiceRow{ID: 1, TenantID: 1, VendorID: 1, Amount: 100.0,
			CreatedAt: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)},
		// first instant of the month: included
		&models.InvoiceRow{ID: 2, TenantID: 1, VendorID: 1, Amount: 10.5,
			CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		&models.InvoiceRow{ID: 3, TenantID: 1, VendorID: 2, Amount: 20.25,
			CreatedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)},
		// other tenant: excluded
		&models.InvoiceRow{ID: 4, TenantID: 2, VendorID: 3, Amount: 500.0,
			CreatedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)},
	)
	vendorRepo := newFakeVendorRepo(
		&models.Vendor{ID: 1, TenantID: 1},
		&models.Vendor{ID: 2, TenantID: 1},
		&models.Vendor{ID: 3, TenantID: 2},
	)
	tripRepo := &fakeTripRepo{trips: []*models.Trip{
		{ID: 1, TenantID: 1},
		{ID: 2, TenantID: 1},
		{ID: 3, TenantID: 2},
	}}

	svc := &dashboardService{
		invoiceRepo: invoiceRepo,
		vendorRepo:  vendorRepo,
		tripRepo:    tripRepo,
		logger:      testLogger(),
		now:         func() time.Time { return now },
	}

	summary, err := svc.GetDashboardSummary(1)
	require.NoError(t, err)

	assert.Equal(t, 30.75, summary.MonthlyTotal)
	assert.Equal(t, int64(2), summary.Vendors)
	assert.Equal(t, int64(2), summary.Pending)
}

func TestDashboardSummaryEmptyTenant(t *testing.T) {
	svc := &dashboardService{
		invoiceRepo: newFakeInvoiceRepo(),
		vendorRepo:  newFakeVendorRepo(),
		tripRepo:    &fakeTripRepo{},
		logger:      testLogger(),
		now:         time.Now,
	}

	summary, err := svc.GetDashboardSummary(7)
	require.NoError(t, err)

	assert.Zero(t, summary.MonthlyTotal)
	assert.Zero(t, summary.Vendors)
	assert.Zero(t, summary.Pending)
}

func TestDashboardSummaryStoreFailurePropagates(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	invoiceRepo.queryErr = errFakeCache
	svc := &dashboardService{
		invoiceRepo: invoiceRepo,
		vendorRepo:  newFakeVendorRepo(),
		tripRepo:    &fakeTripRepo{},
		logger:      testLogger(),
		now:         time.Now,
	}

	_, err := svc.GetDashboardSummary(1)
	assert.Error(t, err)
}
