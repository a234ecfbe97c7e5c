package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbill-be-svc/internal/models"
)

func TestCreateTripBillsImmediately(t *testing.T) {
	vendor := &models.Vendor{ID: 2, TenantID: 1, BillingModel: "trip"}
	invoiceRepo := newFakeInvoiceRepo()
	billingSvc := NewBillingService(newFakeVendorRepo(vendor), invoiceRepo, testLogger())
	tripRepo := &fakeTripRepo{}
	svc := NewTripService(tripRepo, billingSvc, testLogger())

	trip, err := svc.CreateTrip(&models.Trip{TenantID: 1, VendorID: 2, DistanceKM: 4})
	require.NoError(t, err)

	assert.NotZero(t, trip.ID)
	require.Len(t, invoiceRepo.rows, 1)
	assert.Equal(t, trip.ID, invoiceRepo.rows[0].TripID)
	assert.Equal(t, 4.0, invoiceRepo.rows[0].Amount)
}

func TestCreateTripUnknownVendorFails(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	billingSvc := NewBillingService(newFakeVendorRepo(), invoiceRepo, testLogger())
	tripRepo := &fakeTripRepo{}
	svc := NewTripService(tripRepo, billingSvc, testLogger())

	_, err := svc.CreateTrip(&models.Trip{TenantID: 1, VendorID: 99})

	assert.ErrorIs(t, err, ErrVendorNotFound)
	// The trip row itself stays; only the invoice is withheld
	assert.Len(t, tripRepo.trips, 1)
	assert.Empty(t, invoiceRepo.rows)
}

func TestListTripsEmployeeFilter(t *testing.T) {
	tripRepo := &fakeTripRepo{trips: []*models.Trip{
		{ID: 1, TenantID: 1, EmployeeID: 10},
		{ID: 2, TenantID: 1, EmployeeID: 11},
		{ID: 3, TenantID: 2, EmployeeID: 10},
	}}
	svc := NewTripService(tripRepo, nil, testLogger())

	all, err := svc.ListTripsByTenant(1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	employee := uint(10)
	mine, err := svc.ListTripsByTenant(1, &employee)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(1), mine[0].ID)
}
