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

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, tool_id, owner_id, consumer_id, start_date, end_date, total_amount, status, yape_approval_code, created_at, updated_at`

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (tool_id, owner_id, consumer_id, start_date, end_date, total_amount, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		req.ToolID, req.OwnerID, req.ConsumerID, req.StartDate, req.EndDate, req.TotalAmount, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	req := &domain.Request{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.ToolID, &req.OwnerID, &req.ConsumerID, &req.StartDate, &req.EndDate,
		&req.TotalAmount, &req.Status, &req.YapeApprovalCode, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("request")
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests SET status=$1, yape_approval_code=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, req.Status, req.YapeApprovalCode, time.Now(), req.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("request")
	}
	return nil
}

func (r *requestRepository) ListByConsumer(ctx context.Context, consumerID int32) ([]domain.Request, error) {
	return r.listWhere(ctx, "consumer_id = $1", consumerID)
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	return r.listWhere(ctx, "owner_id = $1", ownerID)
}

func (r *requestRepository) listWhere(ctx context.Context, where string, arg interface{}) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE ` + where + ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(
			&req.ID, &req.ToolID, &req.OwnerID, &req.ConsumerID, &req.StartDate, &req.EndDate,
			&req.TotalAmount, &req.Status, &req.YapeApprovalCode, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
