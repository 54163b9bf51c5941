package postgres

import (
	"context"
	"database/sql"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type adminLogRepository struct {
	db *sql.DB
}

func NewAdminLogRepository(db *sql.DB) repository.AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(ctx context.Context, log *domain.AdminLog) error {
	query := `INSERT INTO admin_logs (admin_id, admin_username, action, resource, resource_id, details, ip_address)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		log.AdminID, log.AdminUsername, log.Action, log.Resource, log.ResourceID, log.Details, log.IPAddress).
		Scan(&log.ID, &log.CreatedAt)
}

func (r *adminLogRepository) List(ctx context.Context, skip, limit int32) ([]domain.AdminLog, error) {
	query := `SELECT id, admin_id, admin_username, action, resource, resource_id, details, ip_address, created_at
	          FROM admin_logs ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.AdminLog
	for rows.Next() {
		var l domain.AdminLog
		if err := rows.Scan(&l.ID, &l.AdminID, &l.AdminUsername, &l.Action, &l.Resource,
			&l.ResourceID, &l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
