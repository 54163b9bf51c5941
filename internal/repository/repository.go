package repository

import (
	"context"
	"time"

	"toolshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, skip, limit int32) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Stats(ctx context.Context, registeredSince time.Time) (*domain.UserStats, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	// Delete removes the tool together with its dependent rentals,
	// requests, ratings and chats in one transaction.
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error)
	// ClaimAvailability atomically flips is_available from true to false.
	// Returns false when the tool was already claimed.
	ClaimAvailability(ctx context.Context, id int32) (bool, error)
	ReleaseAvailability(ctx context.Context, id int32) error
	UpdateRatingAggregate(ctx context.Context, id int32, avg float64, count int32) error
	Stats(ctx context.Context) (*domain.ToolStats, error)
}

type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) error
	GetByID(ctx context.Context, id int32) (*domain.Chat, error)
	// GetByParticipants matches the unordered user pair plus tool.
	GetByParticipants(ctx context.Context, user1, user2, toolID int32) (*domain.Chat, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Chat, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// ListByChat returns messages in non-decreasing timestamp order.
	ListByChat(ctx context.Context, chatID int32) ([]domain.Message, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int32) (*domain.Request, error)
	Update(ctx context.Context, req *domain.Request) error
	ListByConsumer(ctx context.Context, consumerID int32) ([]domain.Request, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Request, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByUser(ctx context.Context, userID int32, skip, limit int32) ([]domain.Rental, error)
	ListByTool(ctx context.Context, toolID int32, skip, limit int32) ([]domain.Rental, error)
	// MarkOverdue flips active rentals whose end date is strictly before
	// now to overdue and returns the number of rows changed.
	MarkOverdue(ctx context.Context, now time.Time) (int32, error)
	Stats(ctx context.Context) (*domain.RentalStats, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error)
}

type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	GetByID(ctx context.Context, id int32) (*domain.Rating, error)
	GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Rating, error)
	ListByTool(ctx context.Context, toolID int32, skip, limit int32) ([]domain.Rating, error)
	ListByUser(ctx context.Context, userID int32, skip, limit int32) ([]domain.Rating, error)
	// ValuesByTool returns just the rating values, for stats computation.
	ValuesByTool(ctx context.Context, toolID int32) ([]float64, error)
	Update(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, id int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int32, skip, limit int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type AdminLogRepository interface {
	Create(ctx context.Context, log *domain.AdminLog) error
	List(ctx context.Context, skip, limit int32) ([]domain.AdminLog, error)
}

type BackupConfigRepository interface {
	Create(ctx context.Context, cfg *domain.BackupConfig) error
	GetByID(ctx context.Context, id int32) (*domain.BackupConfig, error)
	List(ctx context.Context, skip, limit int32) ([]domain.BackupConfig, error)
	Update(ctx context.Context, cfg *domain.BackupConfig) error
	// Deactivate soft-deletes by clearing is_active.
	Deactivate(ctx context.Context, id int32) error
}

// ReviewStore is the secondary document store holding free-form reviews and
// promotions. It is deliberately separate from the relational rating table.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	ListReviewsByTool(ctx context.Context, toolID int32) ([]domain.Review, error)
	CreatePromotion(ctx context.Context, promo *domain.Promotion) error
	ListActivePromotions(ctx context.Context) ([]domain.Promotion, error)
}
