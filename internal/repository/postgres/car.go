package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (brand, name, year, rate, image, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		car.Brand, car.Name, car.Year, car.Rate, car.Image, car.IsActive, now, now,
	).Scan(&car.ID, &car.CreatedOn, &car.UpdatedOn)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, brand, name, year, rate, image, is_active, created_on, updated_on FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.Brand, &car.Name, &car.Year, &car.Rate, &car.Image, &car.IsActive, &car.CreatedOn, &car.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET brand=$1, name=$2, year=$3, rate=$4, image=$5, is_active=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query,
		car.Brand, car.Name, car.Year, car.Rate, car.Image, car.IsActive, time.Now(), car.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

// sortColumns whitelists the sortable fields of the car listing.
var sortColumns = map[string]string{
	"rate":       "rate",
	"year":       "year",
	"brand":      "brand",
	"name":       "name",
	"created_on": "created_on",
}

func (r *carRepository) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	query := `SELECT id, brand, name, year, rate, image, is_active, created_on, updated_on FROM cars WHERE is_active = TRUE`

	args := []interface{}{}
	argIdx := 1
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND rate >= $%d", argIdx)
		args = append(args, *filter.MinPrice)
		argIdx++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND rate <= $%d", argIdx)
		args = append(args, *filter.MaxPrice)
		argIdx++
	}
	if filter.MinYear != nil {
		query += fmt.Sprintf(" AND year >= $%d", argIdx)
		args = append(args, *filter.MinYear)
		argIdx++
	}
	if filter.MaxYear != nil {
		query += fmt.Sprintf(" AND year <= $%d", argIdx)
		args = append(args, *filter.MaxYear)
		argIdx++
	}

	if col, ok := sortColumns[filter.SortBy]; ok {
		query += " ORDER BY " + col
		if filter.Order == "desc" {
			query += " DESC"
		}
	} else {
		query += " ORDER BY id"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Brand, &car.Name, &car.Year, &car.Rate, &car.Image, &car.IsActive, &car.CreatedOn, &car.UpdatedOn); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *carRepository) IsActive(ctx context.Context, id int32) (bool, error) {
	var active bool
	err := r.db.QueryRowContext(ctx, `SELECT is_active FROM cars WHERE id = $1`, id).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrCarNotFound
	}
	if err != nil {
		return false, err
	}
	return active, nil
}
