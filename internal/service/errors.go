package service

import "errors"

var (
	// ErrVendorNotFound is returned when a trip references a vendor that
	// does not exist at billing time
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrInvalidPeriod is returned for a malformed statement period
	// before any store access happens
	ErrInvalidPeriod = errors.New("invalid statement period")

	// ErrInvalidCredentials is returned on failed login
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
