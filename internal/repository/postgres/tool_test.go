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

func TestToolRepositoryClaimAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)

	t.Run("claims an available tool", func(t *testing.T) {
		mock.ExpectExec(`UPDATE tools SET is_available = false WHERE id = \$1 AND is_available = true`).
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.ClaimAvailability(context.Background(), 5)

		assert.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("already claimed tool is reported, not errored", func(t *testing.T) {
		mock.ExpectExec(`UPDATE tools SET is_available = false WHERE id = \$1 AND is_available = true`).
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.ClaimAvailability(context.Background(), 5)

		assert.NoError(t, err)
		assert.False(t, claimed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)
	now := time.Now()
	cols := []string{
		"id", "owner_id", "name", "description", "brand", "model", "category_id",
		"daily_price", "warranty", "condition", "is_available", "image_url",
		"avg_rating", "rating_count", "created_at",
	}

	t.Run("no filters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM tools ORDER BY created_at DESC OFFSET \$1 LIMIT \$2`).
			WithArgs(int32(0), int32(100)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(5, 1, "Drill", "", "Bosch", "", 2, 10.0, 0.0, "good", true, "", 0.0, 0, now))

		tools, err := repo.List(context.Background(), domain.ToolFilter{Limit: 100})

		assert.NoError(t, err)
		assert.Len(t, tools, 1)
		assert.Equal(t, "Drill", tools[0].Name)
	})

	t.Run("filters are numbered in order", func(t *testing.T) {
		catID := int32(2)
		minPrice := 5.0
		available := true

		mock.ExpectQuery(`SELECT (.+) FROM tools WHERE \(name ILIKE \$1 OR description ILIKE \$1 OR brand ILIKE \$1 OR model ILIKE \$1\) AND category_id = \$2 AND daily_price >= \$3 AND is_available = \$4`).
			WithArgs("%drill%", catID, minPrice, available, int32(0), int32(20)).
			WillReturnRows(sqlmock.NewRows(cols))

		tools, err := repo.List(context.Background(), domain.ToolFilter{
			Query:      "drill",
			CategoryID: &catID,
			MinPrice:   &minPrice,
			Available:  &available,
			Limit:      20,
		})

		assert.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("text search spans name, description, brand and model", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM tools WHERE \(name ILIKE \$1 OR description ILIKE \$1 OR brand ILIKE \$1 OR model ILIKE \$1\) ORDER BY created_at DESC OFFSET \$2 LIMIT \$3`).
			WithArgs("%GSB 13%", int32(0), int32(20)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(5, 1, "Drill", "", "Bosch", "GSB 13 RE", 2, 10.0, 0.0, "good", true, "", 0.0, 0, now))

		tools, err := repo.List(context.Background(), domain.ToolFilter{Query: "GSB 13", Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, tools, 1)
		assert.Equal(t, "GSB 13 RE", tools[0].Model)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)

	t.Run("cascades through dependents in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM messages`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM chats`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM payments`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM requests`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM rentals`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM ratings`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM tools`).WithArgs(int32(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), 5))
	})

	t.Run("unknown tool rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM messages`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM chats`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM payments`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM requests`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM rentals`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM ratings`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM tools`).WithArgs(int32(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), 99)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepositoryUpdateRatingAggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)

	mock.ExpectExec(`UPDATE tools SET avg_rating = \$1, rating_count = \$2 WHERE id = \$3`).
		WithArgs(4.67, int32(3), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateRatingAggregate(context.Background(), 5, 4.67, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
