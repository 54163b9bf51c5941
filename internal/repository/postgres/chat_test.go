package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
)

func TestChatRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewChatRepository(db)
	chat := &domain.Chat{OwnerID: 1, ConsumerID: 2, ToolID: 5}

	mock.ExpectQuery("INSERT INTO chats").
		WithArgs(chat.OwnerID, chat.ConsumerID, chat.ToolID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

	assert.NoError(t, repo.Create(context.Background(), chat))
	assert.Equal(t, int32(7), chat.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepositoryGetByParticipants(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewChatRepository(db)
	now := time.Now()
	cols := []string{"id", "owner_id", "consumer_id", "tool_id", "created_at"}

	t.Run("matches regardless of argument order", func(t *testing.T) {
		// Same stored row for both orderings of the pair.
		mock.ExpectQuery(`SELECT (.+) FROM chats`).
			WithArgs(int32(1), int32(2), int32(5)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 1, 2, 5, now))
		mock.ExpectQuery(`SELECT (.+) FROM chats`).
			WithArgs(int32(2), int32(1), int32(5)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 1, 2, 5, now))

		first, err := repo.GetByParticipants(context.Background(), 1, 2, 5)
		assert.NoError(t, err)
		second, err := repo.GetByParticipants(context.Background(), 2, 1, 5)
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("no chat for the pair", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM chats`).
			WithArgs(int32(1), int32(3), int32(5)).
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByParticipants(context.Background(), 1, 3, 5)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryListByChat(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMessageRepository(db)
	base := time.Now()
	sender := int32(2)

	rows := sqlmock.NewRows([]string{"id", "chat_id", "sender_id", "content", "created_at"}).
		AddRow(1, 7, nil, "Rental request #11 created", base).
		AddRow(2, 7, sender, "sounds good", base.Add(time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM messages WHERE chat_id = \$1`).
		WithArgs(int32(7)).
		WillReturnRows(rows)

	msgs, err := repo.ListByChat(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Nil(t, msgs[0].SenderID) // system message
	assert.Equal(t, int32(2), *msgs[1].SenderID)
	assert.True(t, !msgs[1].CreatedAt.Before(msgs[0].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
