package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, tool_id, user_id, start_date, end_date, actual_return_date, total_price, status, notes, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (tool_id, user_id, start_date, end_date, total_price, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		rental.ToolID, rental.UserID, rental.StartDate, rental.EndDate,
		rental.TotalPrice, rental.Status, rental.Notes).
		Scan(&rental.ID, &rental.CreatedAt, &rental.UpdatedAt)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rental := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rental.ID, &rental.ToolID, &rental.UserID, &rental.StartDate, &rental.EndDate,
		&rental.ActualReturnDate, &rental.TotalPrice, &rental.Status, &rental.Notes,
		&rental.CreatedAt, &rental.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("rental")
	}
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, actual_return_date=$2, notes=$3, updated_at=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query,
		rental.Status, rental.ActualReturnDate, rental.Notes, time.Now(), rental.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("rental")
	}
	return nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rental, error) {
	return r.listWhere(ctx, "user_id = $1", userID, skip, limit)
}

func (r *rentalRepository) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rental, error) {
	return r.listWhere(ctx, "tool_id = $1", toolID, skip, limit)
}

func (r *rentalRepository) listWhere(ctx context.Context, where string, arg interface{}, skip, limit int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE ` + where +
		` ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, arg, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := rows.Scan(
			&rental.ID, &rental.ToolID, &rental.UserID, &rental.StartDate, &rental.EndDate,
			&rental.ActualReturnDate, &rental.TotalPrice, &rental.Status, &rental.Notes,
			&rental.CreatedAt, &rental.UpdatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) MarkOverdue(ctx context.Context, now time.Time) (int32, error) {
	query := `UPDATE rentals SET status = 'overdue', updated_at = $1 WHERE status = 'active' AND end_date < $1`
	logger.DatabaseCall("MarkOverdue", query, "now", now)
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		logger.DatabaseResult("MarkOverdue", 0, err)
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	logger.DatabaseResult("MarkOverdue", rows, nil)
	return int32(rows), nil
}

func (r *rentalRepository) Stats(ctx context.Context) (*domain.RentalStats, error) {
	stats := &domain.RentalStats{}
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE status = 'active'),
	                 count(*) FILTER (WHERE status = 'overdue'),
	                 count(*) FILTER (WHERE status = 'returned'),
	                 COALESCE(sum(total_price) FILTER (WHERE status IN ('active', 'returned', 'overdue')), 0)
	          FROM rentals`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalRentals, &stats.ActiveRentals, &stats.OverdueRentals,
		&stats.CompletedRentals, &stats.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
