package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, user_id, rental_start_date, rental_finish_date, one_day_rental_price, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rt.CarID, rt.UserID, rt.RentalStartDate, rt.RentalFinishDate, rt.OneDayRentalPrice, rt.Status, now, now,
	).Scan(&rt.ID, &rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, car_id, user_id, rental_start_date, rental_finish_date, one_day_rental_price, status, created_on, updated_on
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CarID, &rt.UserID, &rt.RentalStartDate, &rt.RentalFinishDate, &rt.OneDayRentalPrice, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET car_id=$1, rental_start_date=$2, rental_finish_date=$3, one_day_rental_price=$4, status=$5, updated_on=$6
	          WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query,
		rt.CarID, rt.RentalStartDate, rt.RentalFinishDate, rt.OneDayRentalPrice, rt.Status, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT id, car_id, user_id, rental_start_date, rental_finish_date, one_day_rental_price, status, created_on, updated_on
	          FROM rentals WHERE user_id = $1 ORDER BY rental_start_date`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT id, car_id, user_id, rental_start_date, rental_finish_date, one_day_rental_price, status, created_on, updated_on
	          FROM rentals ORDER BY rental_start_date`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.UserID, &rt.RentalStartDate, &rt.RentalFinishDate, &rt.OneDayRentalPrice, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListDoneWindowsByCar(ctx context.Context, carID int32) ([]domain.RentalWindow, error) {
	query := `SELECT id, rental_start_date, rental_finish_date FROM rentals
	          WHERE car_id = $1 AND status = $2 ORDER BY rental_start_date`
	rows, err := r.db.QueryContext(ctx, query, carID, domain.RentalStatusDone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []domain.RentalWindow
	for rows.Next() {
		var w domain.RentalWindow
		if err := rows.Scan(&w.ID, &w.RentalStartDate, &w.RentalFinishDate); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

func (r *rentalRepository) GetOwnerID(ctx context.Context, rentalID int32) (int32, error) {
	var ownerID int32
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM rentals WHERE id = $1`, rentalID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrRentalNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

func (r *rentalRepository) GetStartDate(ctx context.Context, rentalID int32) (time.Time, error) {
	var start time.Time
	err := r.db.QueryRowContext(ctx, `SELECT rental_start_date FROM rentals WHERE id = $1`, rentalID).Scan(&start)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, domain.ErrRentalNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return start, nil
}

func (r *rentalRepository) Statistics(ctx context.Context) ([]domain.CarRentalStats, error) {
	query := `SELECT r.car_id, c.name, c.year, COUNT(*) AS done_rentals_count
	          FROM rentals r
	          JOIN cars c ON c.id = r.car_id
	          WHERE r.status = $1
	          GROUP BY r.car_id, c.name, c.year
	          ORDER BY done_rentals_count DESC, r.car_id`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusDone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CarRentalStats
	for rows.Next() {
		var st domain.CarRentalStats
		if err := rows.Scan(&st.CarID, &st.CarName, &st.CarYear, &st.DoneRentalsCount); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
