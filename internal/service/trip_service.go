package service

import (
	"fmt"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// TripService defines the interface for trip operations
type TripService interface {
	CreateTrip(trip *models.Trip) (*models.Trip, error)
	ListTripsByTenant(tenantID uint, employeeID *uint) ([]*models.Trip, error)
}

// tripService implements TripService. Every created trip is billed
// immediately through the billing service.
type tripService struct {
	tripRepo       repository.TripRepository
	billingService BillingService
	logger         *logger.Logger
}

// NewTripService creates a new instance of TripService
func NewTripService(tripRepo repository.TripRepository, billingService BillingService, logger *logger.Logger) TripService {
	return &tripService{
		tripRepo:       tripRepo,
		billingService: billingService,
		logger:         logger,
	}
}

// CreateTrip persists a trip and bills it. A billing failure after the
// trip write propagates; the trip row stays.
func (s *tripService) CreateTrip(trip *models.Trip) (*models.Trip, error) {
	if err := s.tripRepo.CreateTrip(trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	if _, err := s.billingService.BillTrip(trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// ListTripsByTenant retrieves trips of a tenant with an optional
// employee filter
func (s *tripService) ListTripsByTenant(tenantID uint, employeeID *uint) ([]*models.Trip, error) {
	return s.tripRepo.ListTripsByTenant(tenantID, employeeID)
}
