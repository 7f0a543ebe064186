package service

import (
	"context"
	"time"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)                      // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetUser(ctx context.Context, requester booking.Requester, id int32) (*domain.User, error)
	UpdateUser(ctx context.Context, requester booking.Requester, id int32, name, email, password string) (*domain.User, error)
	DeleteUser(ctx context.Context, requester booking.Requester, id int32) error
	SetFavoriteCars(ctx context.Context, requester booking.Requester, id int32, carIDs []int32) (*domain.User, error)
	ClearFavoriteCars(ctx context.Context, requester booking.Requester, id int32) error
}

type CarService interface {
	CreateCar(ctx context.Context, requester booking.Requester, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
	UpdateCar(ctx context.Context, requester booking.Requester, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, requester booking.Requester, id int32) error
}

// UpdateRentalInput carries the mutable fields of a rental edit.
type UpdateRentalInput struct {
	RentalStartDate  time.Time
	RentalFinishDate time.Time
	Status           domain.RentalStatus
}

type RentalService interface {
	CreateRental(ctx context.Context, requester booking.Requester, carID, userID int32, start, finish time.Time, price int32) (*domain.Rental, error)
	UpdateRental(ctx context.Context, requester booking.Requester, rentalID int32, in UpdateRentalInput) (*domain.Rental, error)
	CancelRental(ctx context.Context, requester booking.Requester, rentalID int32) (*domain.Rental, error)
	DeleteRental(ctx context.Context, requester booking.Requester, rentalID int32) error
	GetRental(ctx context.Context, requester booking.Requester, rentalID int32) (*domain.Rental, error)
	ListMyRentals(ctx context.Context, requester booking.Requester) ([]domain.Rental, error)
	ListAllRentals(ctx context.Context, requester booking.Requester) ([]domain.Rental, error)
	Statistics(ctx context.Context, requester booking.Requester) ([]domain.CarRentalStats, error)
	// CheckCarForDates is the availability probe: car gate plus date
	// rules, without persisting anything.
	CheckCarForDates(ctx context.Context, carID int32, start, finish time.Time) error
}

type LicenseService interface {
	CreateLicense(ctx context.Context, requester booking.Requester, lic *domain.DriverLicense) error
	GetLicense(ctx context.Context, requester booking.Requester, userID int32) (*domain.DriverLicense, error)
	UpdateLicense(ctx context.Context, requester booking.Requester, lic *domain.DriverLicense) (*domain.DriverLicense, error)
	DeleteLicense(ctx context.Context, requester booking.Requester, userID int32) error
}

type EmailService interface {
	SendRentalReminder(ctx context.Context, email, name, carName string, start time.Time) error
	SendLicenseExpiryReminder(ctx context.Context, email, name, number string, expiry time.Time) error
}
