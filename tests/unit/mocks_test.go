package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
)

// fixedClock pins time for deterministic date-rule tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetRole(ctx context.Context, id int32) (domain.UserRole, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserRole), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) SetFavoriteCars(ctx context.Context, id int32, carIDs []int32) error {
	args := m.Called(ctx, id, carIDs)
	return args.Error(0)
}
func (m *MockUserRepo) ClearFavoriteCars(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) IsActive(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListAll(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListDoneWindowsByCar(ctx context.Context, carID int32) ([]domain.RentalWindow, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.RentalWindow), args.Error(1)
}
func (m *MockRentalRepo) GetOwnerID(ctx context.Context, rentalID int32) (int32, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRepo) GetStartDate(ctx context.Context, rentalID int32) (time.Time, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockRentalRepo) Statistics(ctx context.Context) ([]domain.CarRentalStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CarRentalStats), args.Error(1)
}

// MockLicenseRepo
type MockLicenseRepo struct {
	mock.Mock
}

func (m *MockLicenseRepo) Create(ctx context.Context, license *domain.DriverLicense) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}
func (m *MockLicenseRepo) GetByUserID(ctx context.Context, userID int32) (*domain.DriverLicense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverLicense), args.Error(1)
}
func (m *MockLicenseRepo) UpdateByUserID(ctx context.Context, license *domain.DriverLicense) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}
func (m *MockLicenseRepo) DeleteByUserID(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
