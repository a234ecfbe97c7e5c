package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func TestBillTripCreatesInvoiceRow(t *testing.T) {
	vendor := &models.Vendor{
		ID:           7,
		TenantID:     1,
		Name:         "Vendor A",
		BillingModel: "trip",
		BillingConfig: models.RateConfig{
			"per_km":   2.0,
			"per_hour": 10.0,
		},
	}
	invoiceRepo := newFakeInvoiceRepo()
	svc := NewBillingService(newFakeVendorRepo(vendor), invoiceRepo, testLogger())

	trip := &models.Trip{
		ID:              42,
		TenantID:        1,
		VendorID:        7,
		DistanceKM:      10,
		DurationMinutes: 30,
	}

	row, err := svc.BillTrip(trip)
	require.NoError(t, err)

	// 10*2.0 + 0.5*10.0
	assert.Equal(t, 25.0, row.Amount)
	assert.Equal(t, uint(1), row.TenantID)
	assert.Equal(t, uint(7), row.VendorID)
	assert.Equal(t, uint(42), row.TripID)
	assert.Equal(t, "auto", row.Note)
	assert.NotZero(t, row.ID)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Len(t, invoiceRepo.rows, 1)
}

func TestBillTripVendorNotFound(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := NewBillingService(newFakeVendorRepo(), invoiceRepo, testLogger())

	row, err := svc.BillTrip(&models.Trip{ID: 1, VendorID: 99})

	assert.Nil(t, row)
	assert.ErrorIs(t, err, ErrVendorNotFound)
	assert.Empty(t, invoiceRepo.rows, "no invoice row may be written for a missing vendor")
}

func TestBillTripTwiceWritesTwoRows(t *testing.T) {
	vendor := &models.Vendor{ID: 3, TenantID: 1, BillingModel: "package"}
	invoiceRepo := newFakeInvoiceRepo()
	svc := NewBillingService(newFakeVendorRepo(vendor), invoiceRepo, testLogger())

	trip := &models.Trip{ID: 5, TenantID: 1, VendorID: 3}

	first, err := svc.BillTrip(trip)
	require.NoError(t, err)
	second, err := svc.BillTrip(trip)
	require.NoError(t, err)

	// No uniqueness constraint on trip_id: re-billing duplicates the row
	assert.Len(t, invoiceRepo.rows, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Amount, second.Amount)
}

func TestBillTripInsertFailurePropagates(t *testing.T) {
	vendor := &models.Vendor{ID: 3, TenantID: 1, BillingModel: "trip"}
	invoiceRepo := newFakeInvoiceRepo()
	invoiceRepo.insertErr = errors.New("connection reset")
	svc := NewBillingService(newFakeVendorRepo(vendor), invoiceRepo, testLogger())

	_, err := svc.BillTrip(&models.Trip{ID: 5, TenantID: 1, VendorID: 3})

	assert.ErrorContains(t, err, "connection reset")
}
