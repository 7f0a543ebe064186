package service

import (
	"context"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, requester booking.Requester, id int32) (*domain.User, error) {
	if !booking.CanAccess(requester, id) {
		return nil, domain.ErrNoRights
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, requester booking.Requester, id int32, name, email, password string) (*domain.User, error) {
	if !booking.CanAccess(requester, id) {
		return nil, domain.ErrNoRights
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, requester booking.Requester, id int32) error {
	if !booking.CanAccess(requester, id) {
		return domain.ErrNoRights
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) SetFavoriteCars(ctx context.Context, requester booking.Requester, id int32, carIDs []int32) (*domain.User, error) {
	if !booking.CanAccess(requester, id) {
		return nil, domain.ErrNoRights
	}
	if err := s.userRepo.SetFavoriteCars(ctx, id, carIDs); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ClearFavoriteCars(ctx context.Context, requester booking.Requester, id int32) error {
	if !booking.CanAccess(requester, id) {
		return domain.ErrNoRights
	}
	return s.userRepo.ClearFavoriteCars(ctx, id)
}
