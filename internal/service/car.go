package service

import (
	"context"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) CreateCar(ctx context.Context, requester booking.Requester, car *domain.Car) error {
	if !requester.IsAdmin() {
		return domain.ErrNoRights
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListCars(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	return s.carRepo.List(ctx, filter)
}

func (s *carService) UpdateCar(ctx context.Context, requester booking.Requester, car *domain.Car) (*domain.Car, error) {
	if !requester.IsAdmin() {
		return nil, domain.ErrNoRights
	}
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return s.carRepo.GetByID(ctx, car.ID)
}

func (s *carService) DeleteCar(ctx context.Context, requester booking.Requester, id int32) error {
	if !requester.IsAdmin() {
		return domain.ErrNoRights
	}
	return s.carRepo.Delete(ctx, id)
}
