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

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	user := &domain.User{
		Email:        "carla@example.com",
		Username:     "carla",
		PasswordHash: "$2a$10$hash",
		FullName:     "Carla C",
		IsActive:     true,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Username, user.PasswordHash, user.FullName, user.Phone,
			user.IsActive, user.IsAdmin, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))

	assert.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int32(2), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()
	cols := []string{"id", "email", "username", "password_hash", "full_name", "phone", "is_active", "is_admin", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("carla@example.com").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(2, "carla@example.com", "carla", "hash", "Carla C", "", true, false, now, now))

		user, err := repo.GetByEmail(context.Background(), "carla@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "carla", user.Username)
		assert.True(t, user.IsActive)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByEmail(context.Background(), "ghost@example.com")

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	since := time.Now().AddDate(0, 0, -7)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"total", "active", "admins", "recent"}).
			AddRow(20, 18, 2, 5))

	stats, err := repo.Stats(context.Background(), since)

	assert.NoError(t, err)
	assert.Equal(t, int32(20), stats.TotalUsers)
	assert.Equal(t, int32(18), stats.ActiveUsers)
	assert.Equal(t, int32(2), stats.AdminUsers)
	assert.Equal(t, int32(5), stats.RecentRegistrations)
	assert.NoError(t, mock.ExpectationsWereMet())
}
