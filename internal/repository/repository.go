package repository

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRole(ctx context.Context, id int32) (domain.UserRole, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
	SetFavoriteCars(ctx context.Context, id int32, carIDs []int32) error
	ClearFavoriteCars(ctx context.Context, id int32) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
	// IsActive returns the active flag of a car, or domain.ErrCarNotFound.
	IsActive(ctx context.Context, id int32) (bool, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
	// ListDoneWindowsByCar returns the confirmed bookings of one car in
	// persisted (start date) order, projected for the overlap checker.
	ListDoneWindowsByCar(ctx context.Context, carID int32) ([]domain.RentalWindow, error)
	GetOwnerID(ctx context.Context, rentalID int32) (int32, error)
	GetStartDate(ctx context.Context, rentalID int32) (time.Time, error)
	// Statistics counts Done rentals per car, joined with car metadata.
	Statistics(ctx context.Context) ([]domain.CarRentalStats, error)
}

type LicenseRepository interface {
	Create(ctx context.Context, license *domain.DriverLicense) error
	GetByUserID(ctx context.Context, userID int32) (*domain.DriverLicense, error)
	UpdateByUserID(ctx context.Context, license *domain.DriverLicense) error
	DeleteByUserID(ctx context.Context, userID int32) error
}
