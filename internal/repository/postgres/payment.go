package postgres

import (
	"context"
	"database/sql"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (request_id, amount, type, status, reference)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, p.RequestID, p.Amount, p.Type, p.Status, p.Reference).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *paymentRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error) {
	query := `SELECT id, request_id, amount, type, status, reference, created_at FROM payments
	          WHERE request_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RequestID, &p.Amount, &p.Type, &p.Status, &p.Reference, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
