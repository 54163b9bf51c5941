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

type backupConfigRepository struct {
	db *sql.DB
}

func NewBackupConfigRepository(db *sql.DB) repository.BackupConfigRepository {
	return &backupConfigRepository{db: db}
}

const backupConfigColumns = `id, name, description, config_data, created_by, is_active, created_at, updated_at`

func (r *backupConfigRepository) Create(ctx context.Context, cfg *domain.BackupConfig) error {
	query := `INSERT INTO backup_configs (name, description, config_data, created_by, is_active)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		cfg.Name, cfg.Description, cfg.ConfigData, cfg.CreatedBy, cfg.IsActive).
		Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
}

func (r *backupConfigRepository) GetByID(ctx context.Context, id int32) (*domain.BackupConfig, error) {
	cfg := &domain.BackupConfig{}
	query := `SELECT ` + backupConfigColumns + ` FROM backup_configs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cfg.ID, &cfg.Name, &cfg.Description, &cfg.ConfigData, &cfg.CreatedBy,
		&cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("backup config")
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *backupConfigRepository) List(ctx context.Context, skip, limit int32) ([]domain.BackupConfig, error) {
	query := `SELECT ` + backupConfigColumns + ` FROM backup_configs
	          ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []domain.BackupConfig
	for rows.Next() {
		var cfg domain.BackupConfig
		if err := rows.Scan(&cfg.ID, &cfg.Name, &cfg.Description, &cfg.ConfigData,
			&cfg.CreatedBy, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (r *backupConfigRepository) Update(ctx context.Context, cfg *domain.BackupConfig) error {
	query := `UPDATE backup_configs SET name=$1, description=$2, config_data=$3, is_active=$4, updated_at=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		cfg.Name, cfg.Description, cfg.ConfigData, cfg.IsActive, time.Now(), cfg.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("backup config")
	}
	return nil
}

func (r *backupConfigRepository) Deactivate(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE backup_configs SET is_active = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("backup config")
	}
	return nil
}
