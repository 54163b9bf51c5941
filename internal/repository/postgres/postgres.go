package postgres

import (
	"database/sql"

	"toolshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CategoryRepository
	repository.ToolRepository
	repository.ChatRepository
	repository.MessageRepository
	repository.RequestRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.RatingRepository
	repository.NotificationRepository
	repository.AdminLogRepository
	repository.BackupConfigRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		ToolRepository:         NewToolRepository(db),
		ChatRepository:         NewChatRepository(db),
		MessageRepository:      NewMessageRepository(db),
		RequestRepository:      NewRequestRepository(db),
		RentalRepository:       NewRentalRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		RatingRepository:       NewRatingRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AdminLogRepository:     NewAdminLogRepository(db),
		BackupConfigRepository: NewBackupConfigRepository(db),
	}
}
