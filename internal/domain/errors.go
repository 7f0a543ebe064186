package domain

import "errors"

// Absence and authorization sentinels shared across layers. Repositories
// translate sql.ErrNoRows into the matching not-found error so callers
// never conflate "missing" with "denied".
var (
	ErrUserNotFound    = errors.New("user not found in database")
	ErrCarNotFound     = errors.New("car not found in database")
	ErrRentalNotFound  = errors.New("rental not found in database")
	ErrLicenseNotFound = errors.New("driver license not found in database")

	ErrNoToken  = errors.New("authorization token is not provided")
	ErrNoRights = errors.New("no rights to access this resource")

	ErrEmailTaken    = errors.New("email is already registered")
	ErrLicenseExists = errors.New("user already has driver license data")

	ErrStatusTransition = errors.New("rental status transition is not allowed")
)
