package service

import (
	"context"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type licenseService struct {
	licenseRepo repository.LicenseRepository
}

func NewLicenseService(licenseRepo repository.LicenseRepository) LicenseService {
	return &licenseService{licenseRepo: licenseRepo}
}

func (s *licenseService) CreateLicense(ctx context.Context, requester booking.Requester, lic *domain.DriverLicense) error {
	if !booking.CanAccess(requester, lic.UserID) {
		return domain.ErrNoRights
	}
	return s.licenseRepo.Create(ctx, lic)
}

func (s *licenseService) GetLicense(ctx context.Context, requester booking.Requester, userID int32) (*domain.DriverLicense, error) {
	if !booking.CanAccess(requester, userID) {
		return nil, domain.ErrNoRights
	}
	return s.licenseRepo.GetByUserID(ctx, userID)
}

func (s *licenseService) UpdateLicense(ctx context.Context, requester booking.Requester, lic *domain.DriverLicense) (*domain.DriverLicense, error) {
	if !booking.CanAccess(requester, lic.UserID) {
		return nil, domain.ErrNoRights
	}
	if err := s.licenseRepo.UpdateByUserID(ctx, lic); err != nil {
		return nil, err
	}
	return s.licenseRepo.GetByUserID(ctx, lic.UserID)
}

func (s *licenseService) DeleteLicense(ctx context.Context, requester booking.Requester, userID int32) error {
	if !booking.CanAccess(requester, userID) {
		return domain.ErrNoRights
	}
	return s.licenseRepo.DeleteByUserID(ctx, userID)
}
