package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository/postgres"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rental := &domain.Rental{
			CarID:             1,
			UserID:            5,
			RentalStartDate:   now.Add(48 * time.Hour),
			RentalFinishDate:  now.Add(96 * time.Hour),
			OneDayRentalPrice: 4500,
			Status:            domain.RentalStatusDone,
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CarID, rental.UserID, rental.RentalStartDate, rental.RentalFinishDate, rental.OneDayRentalPrice, rental.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(10, now, now))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), rental.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "car_id", "user_id", "rental_start_date", "rental_finish_date", "one_day_rental_price", "status", "created_on", "updated_on"}).
			AddRow(10, 1, 5, now, now.Add(72*time.Hour), 4500, "Done", now, now)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(10)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 10)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, int32(10), rental.ID)
		assert.Equal(t, domain.RentalStatusDone, rental.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "car_id", "user_id", "rental_start_date", "rental_finish_date", "one_day_rental_price", "status", "created_on", "updated_on"}))

		rental, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
		assert.Nil(t, rental)
	})
}

func TestRentalRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rental := &domain.Rental{
		ID:                10,
		CarID:             1,
		RentalStartDate:   time.Now(),
		RentalFinishDate:  time.Now().Add(72 * time.Hour),
		OneDayRentalPrice: 4500,
		Status:            domain.RentalStatusCanceled,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET").
			WithArgs(rental.CarID, rental.RentalStartDate, rental.RentalFinishDate, rental.OneDayRentalPrice, rental.Status, sqlmock.AnyArg(), rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, rental))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET").
			WithArgs(rental.CarID, rental.RentalStartDate, rental.RentalFinishDate, rental.OneDayRentalPrice, rental.Status, sqlmock.AnyArg(), rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, rental)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

func TestRentalRepository_ListDoneWindowsByCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("ReturnsWindowsInStartOrder", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "rental_start_date", "rental_finish_date"}).
			AddRow(1, now, now.Add(48*time.Hour)).
			AddRow(2, now.Add(96*time.Hour), now.Add(120*time.Hour))

		mock.ExpectQuery("SELECT id, rental_start_date, rental_finish_date FROM rentals").
			WithArgs(int32(1), domain.RentalStatusDone).
			WillReturnRows(rows)

		windows, err := repo.ListDoneWindowsByCar(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, windows, 2)
		assert.Equal(t, int32(1), windows[0].ID)
		assert.Equal(t, int32(2), windows[1].ID)
	})

	t.Run("NoBookings", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, rental_start_date, rental_finish_date FROM rentals").
			WithArgs(int32(2), domain.RentalStatusDone).
			WillReturnRows(sqlmock.NewRows([]string{"id", "rental_start_date", "rental_finish_date"}))

		windows, err := repo.ListDoneWindowsByCar(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, windows)
	})
}

func TestRentalRepository_GetOwnerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id FROM rentals WHERE id = \\$1").
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(5))

		ownerID, err := repo.GetOwnerID(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), ownerID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id FROM rentals WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.GetOwnerID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

func TestRentalRepository_Statistics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("CountsDoneRentalsPerCar", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"car_id", "name", "year", "done_rentals_count"}).
			AddRow(1, "Model 3", 2024, 7).
			AddRow(2, "Corolla", 2022, 3)

		mock.ExpectQuery("SELECT r.car_id, c.name, c.year, COUNT").
			WithArgs(domain.RentalStatusDone).
			WillReturnRows(rows)

		stats, err := repo.Statistics(ctx)
		assert.NoError(t, err)
		assert.Len(t, stats, 2)
		assert.Equal(t, int32(7), stats[0].DoneRentalsCount)
		assert.Equal(t, "Model 3", stats[0].CarName)
	})
}
