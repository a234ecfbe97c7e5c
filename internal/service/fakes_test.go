package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"tripbill-be-svc/internal/cache"
	"tripbill-be-svc/internal/models"
)

// In-memory collaborator fakes for service tests.

type fakeVendorRepo struct {
	vendors map[uint]*models.Vendor
	err     error
}

func newFakeVendorRepo(vendors ...*models.Vendor) *fakeVendorRepo {
	repo := &fakeVendorRepo{vendors: map[uint]*models.Vendor{}}
	for _, v := range vendors {
		repo.vendors[v.ID] = v
	}
	return repo
}

func (r *fakeVendorRepo) CreateVendor(vendor *models.Vendor) error {
	if r.err != nil {
		return r.err
	}
	vendor.ID = uint(len(r.vendors) + 1)
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) GetVendorByID(id uint) (*models.Vendor, error) {
	if r.err != nil {
		return nil, r.err
	}
	vendor, ok := r.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vendor, nil
}

func (r *fakeVendorRepo) ListVendorIDs() ([]uint, error) {
	var ids []uint
	for id := range r.vendors {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeVendorRepo) CountVendorsByTenant(tenantID uint) (int64, error) {
	var count int64
	for _, v := range r.vendors {
		if v.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

type fakeInvoiceRepo struct {
	mu         sync.Mutex
	rows       []*models.InvoiceRow
	nextID     uint
	insertErr  error
	queryErr   error
	queryCalls int
}

func newFakeInvoiceRepo(rows ...*models.InvoiceRow) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{rows: rows, nextID: uint(len(rows)) + 1}
}

func (r *fakeInvoiceRepo) InsertInvoiceRow(row *models.InvoiceRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	row.ID = r.nextID
	r.nextID++
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	r.rows = append(r.rows, row)
	return nil
}

func (r *fakeInvoiceRepo) FindByVendorAndDateRange(vendorID uint, start, end time.Time) ([]*models.InvoiceRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCalls++
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	var out []*models.InvoiceRow
	for _, row := range r.rows {
		if row.VendorID != vendorID {
			continue
		}
		if row.CreatedAt.Before(start) || !row.CreatedAt.Before(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) SumAmountByTenantSince(tenantID uint, since time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.queryErr != nil {
		return 0, r.queryErr
	}
	var total float64
	for _, row := range r.rows {
		if row.TenantID == tenantID && !row.CreatedAt.Before(since) {
			total += row.Amount
		}
	}
	return total, nil
}

type fakeTripRepo struct {
	trips []*models.Trip
	err   error
}

func (r *fakeTripRepo) CreateTrip(trip *models.Trip) error {
	if r.err != nil {
		return r.err
	}
	trip.ID = uint(len(r.trips) + 1)
	r.trips = append(r.trips, trip)
	return nil
}

func (r *fakeTripRepo) ListTripsByTenant(tenantID uint, employeeID *uint) ([]*models.Trip, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Trip
	for _, trip := range r.trips {
		if trip.TenantID != tenantID {
			continue
		}
		if employeeID != nil && trip.EmployeeID != *employeeID {
			continue
		}
		out = append(out, trip)
	}
	return out, nil
}

func (r *fakeTripRepo) CountTripsByTenant(tenantID uint) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, trip := range r.trips {
		if trip.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

var errFakeCache = errors.New("cache unavailable")

type fakeCache struct {
	mu       sync.Mutex
	values   map[string]string
	ttls     map[string]time.Duration
	getCalls int
	setCalls int
	failGet  bool
	failSet  bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	if c.failGet {
		return "", errFakeCache
	}
	val, ok := c.values[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (c *fakeCache) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	if c.failSet {
		return errFakeCache
	}
	c.values[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}
