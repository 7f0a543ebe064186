package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

func TestUserService_Access(t *testing.T) {
	ctx := context.Background()
	client := booking.Requester{ID: 5, Role: domain.UserRoleClient}
	admin := booking.Requester{ID: 99, Role: domain.UserRoleAdmin}

	t.Run("OwnerReadsOwnProfile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5}, nil)

		user, err := svc.GetUser(ctx, client, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(5), user.ID)
	})

	t.Run("StrangerDenied", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		_, err := svc.GetUser(ctx, client, 6)
		assert.ErrorIs(t, err, domain.ErrNoRights)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("AdminReadsAnyProfile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(6)).Return(&domain.User{ID: 6}, nil)

		_, err := svc.GetUser(ctx, admin, 6)
		assert.NoError(t, err)
	})

	t.Run("DeleteRequiresOwnershipOrAdmin", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		err := svc.DeleteUser(ctx, client, 6)
		assert.ErrorIs(t, err, domain.ErrNoRights)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	client := booking.Requester{ID: 5, Role: domain.UserRoleClient}

	t.Run("EmptyFieldsKeepCurrentValues", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		stored := &domain.User{ID: 5, Name: "Ada", Email: "ada@example.com", PasswordHash: "oldhash"}
		userRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.UpdateUser(ctx, client, 5, "", "new@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "oldhash", user.PasswordHash)
	})

	t.Run("PasswordIsRehashed", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		stored := &domain.User{ID: 5, Name: "Ada", Email: "ada@example.com", PasswordHash: "oldhash"}
		userRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.UpdateUser(ctx, client, 5, "", "", "newpassword")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")))
	})
}

func TestUserService_Favorites(t *testing.T) {
	ctx := context.Background()
	client := booking.Requester{ID: 5, Role: domain.UserRoleClient}

	t.Run("SetAndReload", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("SetFavoriteCars", ctx, int32(5), []int32{3, 7}).Return(nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, FavoriteCarIDs: []int32{3, 7}}, nil)

		user, err := svc.SetFavoriteCars(ctx, client, 5, []int32{3, 7})
		require.NoError(t, err)
		assert.Equal(t, []int32{3, 7}, user.FavoriteCarIDs)
	})

	t.Run("StrangerCannotTouchFavorites", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		_, err := svc.SetFavoriteCars(ctx, client, 6, []int32{3})
		assert.ErrorIs(t, err, domain.ErrNoRights)

		err = svc.ClearFavoriteCars(ctx, client, 6)
		assert.ErrorIs(t, err, domain.ErrNoRights)
	})
}

func TestCarService_AdminOnlyMutations(t *testing.T) {
	ctx := context.Background()
	client := booking.Requester{ID: 5, Role: domain.UserRoleClient}
	admin := booking.Requester{ID: 99, Role: domain.UserRoleAdmin}

	t.Run("ClientCannotCreate", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo)

		err := svc.CreateCar(ctx, client, &domain.Car{Name: "Model 3"})
		assert.ErrorIs(t, err, domain.ErrNoRights)
		carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AdminCreates", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo)

		carRepo.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)
		assert.NoError(t, svc.CreateCar(ctx, admin, &domain.Car{Name: "Model 3"}))
	})

	t.Run("ListIsPublic", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo)

		carRepo.On("List", ctx, domain.CarFilter{}).Return([]domain.Car{{ID: 1}}, nil)
		cars, err := svc.ListCars(ctx, domain.CarFilter{})
		require.NoError(t, err)
		assert.Len(t, cars, 1)
	})
}

func TestLicenseService_Access(t *testing.T) {
	ctx := context.Background()
	client := booking.Requester{ID: 5, Role: domain.UserRoleClient}
	admin := booking.Requester{ID: 99, Role: domain.UserRoleAdmin}

	t.Run("OwnerCreates", func(t *testing.T) {
		licenseRepo := new(MockLicenseRepo)
		svc := service.NewLicenseService(licenseRepo)

		licenseRepo.On("Create", ctx, mock.AnythingOfType("*domain.DriverLicense")).Return(nil)
		err := svc.CreateLicense(ctx, client, &domain.DriverLicense{UserID: 5, Number: "AB123456"})
		assert.NoError(t, err)
	})

	t.Run("StrangerDenied", func(t *testing.T) {
		licenseRepo := new(MockLicenseRepo)
		svc := service.NewLicenseService(licenseRepo)

		err := svc.CreateLicense(ctx, client, &domain.DriverLicense{UserID: 6, Number: "AB123456"})
		assert.ErrorIs(t, err, domain.ErrNoRights)
		licenseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateNumberSurfaces", func(t *testing.T) {
		licenseRepo := new(MockLicenseRepo)
		svc := service.NewLicenseService(licenseRepo)

		licenseRepo.On("Create", ctx, mock.AnythingOfType("*domain.DriverLicense")).Return(domain.ErrLicenseExists)
		err := svc.CreateLicense(ctx, admin, &domain.DriverLicense{UserID: 6, Number: "AB123456"})
		assert.ErrorIs(t, err, domain.ErrLicenseExists)
	})

	t.Run("AdminReadsAnyLicense", func(t *testing.T) {
		licenseRepo := new(MockLicenseRepo)
		svc := service.NewLicenseService(licenseRepo)

		licenseRepo.On("GetByUserID", ctx, int32(6)).Return(&domain.DriverLicense{UserID: 6}, nil)
		lic, err := svc.GetLicense(ctx, admin, 6)
		require.NoError(t, err)
		assert.Equal(t, int32(6), lic.UserID)
	})
}
