package service

import (
	"context"
	"time"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
	schedule   *booking.Schedule
	guard      *booking.Guard
	clock      booking.Clock
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository, clock booking.Clock) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
		schedule:   booking.NewSchedule(rentalRepo, clock),
		guard:      booking.NewGuard(rentalRepo, clock),
		clock:      clock,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, requester booking.Requester, carID, userID int32, start, finish time.Time, price int32) (*domain.Rental, error) {
	// Clients always book for themselves; admins may book on behalf of
	// another user.
	if !requester.IsAdmin() || userID == 0 {
		userID = requester.ID
	}

	if err := booking.CheckCarAvailable(ctx, s.carRepo, carID); err != nil {
		return nil, err
	}
	if err := s.schedule.ValidateDates(ctx, carID, start, finish, 0); err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		CarID:             carID,
		UserID:            userID,
		RentalStartDate:   start,
		RentalFinishDate:  finish,
		OneDayRentalPrice: price,
		Status:            domain.RentalStatusDone,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) UpdateRental(ctx context.Context, requester booking.Requester, rentalID int32, in UpdateRentalInput) (*domain.Rental, error) {
	if err := s.guard.CheckRentalAccess(ctx, requester, rentalID); err != nil {
		return nil, err
	}
	if err := s.guard.CheckModifiable(ctx, requester, rentalID); err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Status.CanTransitionTo(in.Status) {
		return nil, domain.ErrStatusTransition
	}

	// Availability is a standing precondition: the car may have been
	// deactivated since the rental was created.
	if err := booking.CheckCarAvailable(ctx, s.carRepo, rental.CarID); err != nil {
		return nil, err
	}
	if err := s.schedule.ValidateDates(ctx, rental.CarID, in.RentalStartDate, in.RentalFinishDate, rentalID); err != nil {
		return nil, err
	}

	rental.RentalStartDate = in.RentalStartDate
	rental.RentalFinishDate = in.RentalFinishDate
	rental.Status = in.Status
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CancelRental(ctx context.Context, requester booking.Requester, rentalID int32) (*domain.Rental, error) {
	if err := s.guard.CheckRentalAccess(ctx, requester, rentalID); err != nil {
		return nil, err
	}
	if err := s.guard.CheckModifiable(ctx, requester, rentalID); err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Status.CanTransitionTo(domain.RentalStatusCanceled) {
		return nil, domain.ErrStatusTransition
	}

	rental.Status = domain.RentalStatusCanceled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// DeleteRental is the peripheral hard delete, outside the state machine.
func (s *rentalService) DeleteRental(ctx context.Context, requester booking.Requester, rentalID int32) error {
	if !requester.IsAdmin() {
		return domain.ErrNoRights
	}
	return s.rentalRepo.Delete(ctx, rentalID)
}

func (s *rentalService) GetRental(ctx context.Context, requester booking.Requester, rentalID int32) (*domain.Rental, error) {
	if err := s.guard.CheckRentalAccess(ctx, requester, rentalID); err != nil {
		return nil, err
	}
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) ListMyRentals(ctx context.Context, requester booking.Requester) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, requester.ID)
}

func (s *rentalService) ListAllRentals(ctx context.Context, requester booking.Requester) ([]domain.Rental, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrNoRights
	}
	return s.rentalRepo.ListAll(ctx)
}

func (s *rentalService) Statistics(ctx context.Context, requester booking.Requester) ([]domain.CarRentalStats, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrNoRights
	}
	return s.rentalRepo.Statistics(ctx)
}

func (s *rentalService) CheckCarForDates(ctx context.Context, carID int32, start, finish time.Time) error {
	if err := booking.CheckCarAvailable(ctx, s.carRepo, carID); err != nil {
		return err
	}
	return s.schedule.ValidateDates(ctx, carID, start, finish, 0)
}
