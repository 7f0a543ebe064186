package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, favorite_car_ids, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on, updated_on`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, pq.Array(toInt64(user.FavoriteCarIDs)), now, now,
	).Scan(&user.ID, &user.CreatedOn, &user.UpdatedOn)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, `SELECT id, name, email, password_hash, role, favorite_car_ids, created_on, updated_on FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT id, name, email, password_hash, role, favorite_car_ids, created_on, updated_on FROM users WHERE email = $1`, email)
}

func (r *userRepository) getBy(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	var favorites pq.Int64Array
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &favorites, &user.CreatedOn, &user.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user.FavoriteCarIDs = toInt32(favorites)
	return user, nil
}

func (r *userRepository) GetRole(ctx context.Context, id int32) (domain.UserRole, error) {
	var role domain.UserRole
	err := r.db.QueryRowContext(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, password_hash=$3, updated_on=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordHash, time.Now(), user.ID)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetFavoriteCars(ctx context.Context, id int32, carIDs []int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET favorite_car_ids=$1, updated_on=$2 WHERE id=$3`,
		pq.Array(toInt64(carIDs)), time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearFavoriteCars(ctx context.Context, id int32) error {
	return r.SetFavoriteCars(ctx, id, nil)
}

func toInt64(ids []int32) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func toInt32(ids []int64) []int32 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}
