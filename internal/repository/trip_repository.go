package repository

import (
	"tripbill-be-svc/internal/models"

	"gorm.io/gorm"
)

// TripRepository defines the interface for trip data operations
type TripRepository interface {
	CreateTrip(trip *models.Trip) error
	ListTripsByTenant(tenantID uint, employeeID *uint) ([]*models.Trip, error)
	CountTripsByTenant(tenantID uint) (int64, error)
}

// tripRepository implements TripRepository
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new instance of TripRepository
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

// CreateTrip persists a new trip
func (r *tripRepository) CreateTrip(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

// ListTripsByTenant retrieves trips of a tenant, newest first, with an
// optional employee filter
func (r *tripRepository) ListTripsByTenant(tenantID uint, employeeID *uint) ([]*models.Trip, error) {
	query := r.db.Where("tenant_id = ?", tenantID)
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var trips []*models.Trip
	if err := query.Order("date DESC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// CountTripsByTenant counts all trips of a tenant
func (r *tripRepository) CountTripsByTenant(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
