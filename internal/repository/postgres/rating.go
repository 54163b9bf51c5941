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

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

const ratingColumns = `id, tool_id, user_id, rating, comment, created_at, updated_at`

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (tool_id, user_id, rating, comment)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, rating.ToolID, rating.UserID, rating.Rating, rating.Comment).
		Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
}

func (r *ratingRepository) GetByID(ctx context.Context, id int32) (*domain.Rating, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *ratingRepository) GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Rating, error) {
	return r.getWhere(ctx, "user_id = $1 AND tool_id = $2", userID, toolID)
}

func (r *ratingRepository) getWhere(ctx context.Context, where string, args ...interface{}) (*domain.Rating, error) {
	rating := &domain.Rating{}
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rating.ID, &rating.ToolID, &rating.UserID, &rating.Rating, &rating.Comment,
		&rating.CreatedAt, &rating.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("rating")
	}
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *ratingRepository) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rating, error) {
	return r.listWhere(ctx, "tool_id = $1", toolID, skip, limit)
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rating, error) {
	return r.listWhere(ctx, "user_id = $1", userID, skip, limit)
}

func (r *ratingRepository) listWhere(ctx context.Context, where string, arg interface{}, skip, limit int32) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE ` + where +
		` ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, arg, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID, &rating.ToolID, &rating.UserID, &rating.Rating, &rating.Comment,
			&rating.CreatedAt, &rating.UpdatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ratingRepository) ValuesByTool(ctx context.Context, toolID int32) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT rating FROM ratings WHERE tool_id = $1`, toolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	query := `UPDATE ratings SET rating=$1, comment=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, rating.Rating, rating.Comment, time.Now(), rating.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("rating")
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("rating")
	}
	return nil
}
