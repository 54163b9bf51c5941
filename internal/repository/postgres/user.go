package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, username, password_hash, full_name, phone, is_active, is_admin, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, username, password_hash, full_name, phone, is_active, is_admin, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, u.Email, u.Username, u.PasswordHash, u.FullName, u.Phone, u.IsActive, u.IsAdmin, now, now).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getWhere(ctx, "email = $1", email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getWhere(ctx, "username = $1", username)
}

func (r *userRepository) getWhere(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName, &u.Phone, &u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, skip, limit int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName, &u.Phone, &u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, username=$2, password_hash=$3, full_name=$4, phone=$5, is_active=$6, is_admin=$7, updated_at=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, u.Email, u.Username, u.PasswordHash, u.FullName, u.Phone, u.IsActive, u.IsAdmin, time.Now(), u.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

func (r *userRepository) Stats(ctx context.Context, registeredSince time.Time) (*domain.UserStats, error) {
	stats := &domain.UserStats{}
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE is_active),
	                 count(*) FILTER (WHERE is_admin),
	                 count(*) FILTER (WHERE created_at >= $1)
	          FROM users`
	err := r.db.QueryRowContext(ctx, query, registeredSince).
		Scan(&stats.TotalUsers, &stats.ActiveUsers, &stats.AdminUsers, &stats.RecentRegistrations)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
