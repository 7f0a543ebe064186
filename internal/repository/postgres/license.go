package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type licenseRepository struct {
	db *sql.DB
}

func NewLicenseRepository(db *sql.DB) repository.LicenseRepository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) Create(ctx context.Context, lic *domain.DriverLicense) error {
	query := `INSERT INTO driver_licenses (user_id, number, issue_date, expiry_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on, updated_on`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		lic.UserID, lic.Number, lic.IssueDate, lic.ExpiryDate, now, now,
	).Scan(&lic.ID, &lic.CreatedOn, &lic.UpdatedOn)
	if isUniqueViolation(err) {
		return domain.ErrLicenseExists
	}
	return err
}

func (r *licenseRepository) GetByUserID(ctx context.Context, userID int32) (*domain.DriverLicense, error) {
	lic := &domain.DriverLicense{}
	query := `SELECT id, user_id, number, issue_date, expiry_date, created_on, updated_on FROM driver_licenses WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&lic.ID, &lic.UserID, &lic.Number, &lic.IssueDate, &lic.ExpiryDate, &lic.CreatedOn, &lic.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLicenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return lic, nil
}

func (r *licenseRepository) UpdateByUserID(ctx context.Context, lic *domain.DriverLicense) error {
	query := `UPDATE driver_licenses SET number=$1, issue_date=$2, expiry_date=$3, updated_on=$4 WHERE user_id=$5`
	res, err := r.db.ExecContext(ctx, query, lic.Number, lic.IssueDate, lic.ExpiryDate, time.Now(), lic.UserID)
	if isUniqueViolation(err) {
		return domain.ErrLicenseExists
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLicenseNotFound
	}
	return nil
}

func (r *licenseRepository) DeleteByUserID(ctx context.Context, userID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM driver_licenses WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLicenseNotFound
	}
	return nil
}
