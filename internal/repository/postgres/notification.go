package postgres

import (
	"context"
	"database/sql"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, type, content, read)
	          VALUES ($1, $2, $3, false) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, note.UserID, note.Type, note.Content).
		Scan(&note.ID, &note.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, type, content, read, created_at FROM notifications
	          WHERE user_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, userID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Content, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// MarkAsRead scopes the update to the owning user so one user cannot touch
// another's notifications.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("notification")
	}
	return nil
}
