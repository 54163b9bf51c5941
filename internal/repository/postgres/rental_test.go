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

func TestRentalRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Now()

	rental := &domain.Rental{
		ToolID:     5,
		UserID:     2,
		StartDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice: 30.0,
		Status:     domain.RentalStatusPending,
		Notes:      "weekend job",
	}

	mock.ExpectQuery("INSERT INTO rentals").
		WithArgs(rental.ToolID, rental.UserID, rental.StartDate, rental.EndDate, rental.TotalPrice, rental.Status, rental.Notes).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now))

	assert.NoError(t, repo.Create(context.Background(), rental))
	assert.Equal(t, int32(3), rental.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "tool_id", "user_id", "start_date", "end_date", "actual_return_date",
			"total_price", "status", "notes", "created_at", "updated_at",
		}).AddRow(3, 5, 2, now, now, nil, 30.0, "active", "", now, now)

		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(3)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, int32(3), rental.ID)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Nil(t, rental.ActualReturnDate)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), 99)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepositoryMarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	t.Run("returns the affected count", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentals SET status = 'overdue'`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 4))

		count, err := repo.MarkOverdue(context.Background(), time.Now())

		assert.NoError(t, err)
		assert.Equal(t, int32(4), count)
	})

	t.Run("second sweep affects nothing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentals SET status = 'overdue'`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.MarkOverdue(context.Background(), time.Now())

		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepositoryUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	returned := time.Now()
	rental := &domain.Rental{ID: 3, Status: domain.RentalStatusReturned, ActualReturnDate: &returned}

	t.Run("updates the row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentals SET status=\$1`).
			WithArgs(rental.Status, rental.ActualReturnDate, rental.Notes, sqlmock.AnyArg(), rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), rental))
	})

	t.Run("zero rows is a not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentals SET status=\$1`).
			WithArgs(rental.Status, rental.ActualReturnDate, rental.Notes, sqlmock.AnyArg(), rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), rental)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepositoryStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "active", "overdue", "returned", "revenue"}).
			AddRow(10, 3, 1, 5, 420.5))

	stats, err := repo.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int32(10), stats.TotalRentals)
	assert.Equal(t, int32(3), stats.ActiveRentals)
	assert.Equal(t, int32(1), stats.OverdueRentals)
	assert.Equal(t, int32(5), stats.CompletedRentals)
	assert.Equal(t, 420.5, stats.TotalRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
