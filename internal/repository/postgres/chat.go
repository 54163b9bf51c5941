package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type chatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, chat *domain.Chat) error {
	query := `INSERT INTO chats (owner_id, consumer_id, tool_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, chat.OwnerID, chat.ConsumerID, chat.ToolID).
		Scan(&chat.ID, &chat.CreatedAt)
}

func (r *chatRepository) GetByID(ctx context.Context, id int32) (*domain.Chat, error) {
	c := &domain.Chat{}
	query := `SELECT id, owner_id, consumer_id, tool_id, created_at FROM chats WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.OwnerID, &c.ConsumerID, &c.ToolID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("chat")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByParticipants matches the pair in either role order, so a second create
// with swapped users finds the same chat.
func (r *chatRepository) GetByParticipants(ctx context.Context, user1, user2, toolID int32) (*domain.Chat, error) {
	c := &domain.Chat{}
	query := `SELECT id, owner_id, consumer_id, tool_id, created_at FROM chats
	          WHERE tool_id = $3
	            AND ((owner_id = $1 AND consumer_id = $2) OR (owner_id = $2 AND consumer_id = $1))`
	err := r.db.QueryRowContext(ctx, query, user1, user2, toolID).
		Scan(&c.ID, &c.OwnerID, &c.ConsumerID, &c.ToolID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("chat")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Chat, error) {
	query := `SELECT id, owner_id, consumer_id, tool_id, created_at FROM chats
	          WHERE owner_id = $1 OR consumer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		var c domain.Chat
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.ConsumerID, &c.ToolID, &c.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}
