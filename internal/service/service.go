package service

import (
	"context"
	"time"

	"toolshare-backend/internal/domain"
)

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type AuthService interface {
	Register(ctx context.Context, email, username, password, fullName, phone string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Authenticate resolves a bearer token to its active user.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.User, id int32, patch *domain.UserPatch) (*domain.User, error)
	ListUsers(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.User, error)
	DeactivateUser(ctx context.Context, actor *domain.User, id int32, ip *string) error
}

type ToolService interface {
	CreateTool(ctx context.Context, actor *domain.User, tool *domain.Tool) error
	GetTool(ctx context.Context, id int32) (*domain.Tool, error)
	ListTools(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error)
	UpdateTool(ctx context.Context, actor *domain.User, id int32, patch *domain.ToolPatch) (*domain.Tool, error)
	DeleteTool(ctx context.Context, actor *domain.User, id int32, ip *string) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, actor *domain.User, cat *domain.Category) error
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type ChatService interface {
	// CreateChat is idempotent: an existing chat for the unordered pair and
	// tool is returned instead of a duplicate.
	CreateChat(ctx context.Context, actor *domain.User, ownerID, consumerID, toolID int32) (*domain.Chat, error)
	GetChat(ctx context.Context, actor *domain.User, chatID int32) (*domain.Chat, []domain.Message, error)
	ListChats(ctx context.Context, actor *domain.User) ([]domain.Chat, error)
	SendMessage(ctx context.Context, actor *domain.User, chatID int32, content string) (*domain.Message, error)
}

type RequestService interface {
	// CreateFromChat opens a pending request on the chat's tool, priced over
	// the inclusive day span, and drops a system message into the chat.
	CreateFromChat(ctx context.Context, actor *domain.User, chatID int32, startDate, endDate time.Time) (*domain.Request, error)
	GetRequest(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	ListAsConsumer(ctx context.Context, actor *domain.User) ([]domain.Request, error)
	ListAsOwner(ctx context.Context, actor *domain.User) ([]domain.Request, error)

	Confirm(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	Reject(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	Cancel(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	Pay(ctx context.Context, actor *domain.User, id int32, yapeApprovalCode string) (*domain.Request, error)
	ConfirmDelivery(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	ConfirmReturn(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)
	Complete(ctx context.Context, actor *domain.User, id int32) (*domain.Request, error)

	ListPayments(ctx context.Context, actor *domain.User, requestID int32) ([]domain.Payment, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, actor *domain.User, toolID int32, startDate, endDate time.Time, notes string) (*domain.Rental, error)
	GetRental(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error)
	ListByUser(ctx context.Context, actor *domain.User, userID, skip, limit int32) ([]domain.Rental, error)
	ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rental, error)
	Activate(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error)
	Return(ctx context.Context, actor *domain.User, id int32, returnedOn time.Time) (*domain.Rental, error)
	Cancel(ctx context.Context, actor *domain.User, id int32) (*domain.Rental, error)
	// CheckOverdue flips active rentals past their end date to overdue and
	// returns how many changed. Safe to run repeatedly.
	CheckOverdue(ctx context.Context, actor *domain.User) (int32, error)
	Stats(ctx context.Context, actor *domain.User) (*domain.RentalStats, error)
}

type RatingService interface {
	CreateRating(ctx context.Context, actor *domain.User, toolID int32, value float64, comment string) (*domain.Rating, error)
	UpdateRating(ctx context.Context, actor *domain.User, id int32, patch *domain.RatingPatch) (*domain.Rating, error)
	DeleteRating(ctx context.Context, actor *domain.User, id int32) error
	ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rating, error)
	ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rating, error)
	Stats(ctx context.Context, toolID int32) (*domain.RatingStats, error)
}

type ReviewService interface {
	// CreateReview stores the document and folds the new average and count
	// back onto the tool row.
	CreateReview(ctx context.Context, actor *domain.User, review *domain.Review) error
	ListReviewsByTool(ctx context.Context, toolID int32) ([]domain.Review, error)
	ToolStatistics(ctx context.Context, toolID int32) (*domain.ToolStatistics, error)
	CreatePromotion(ctx context.Context, actor *domain.User, promo *domain.Promotion) error
	ListActivePromotions(ctx context.Context) ([]domain.Promotion, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, actor *domain.User, id int32) error
}

type AdminService interface {
	Dashboard(ctx context.Context, actor *domain.User) (*domain.Dashboard, error)
	ListLogs(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.AdminLog, error)
}

type BackupService interface {
	CreateBackup(ctx context.Context, actor *domain.User, ip *string) (*domain.BackupFile, error)
	ListBackups(ctx context.Context, actor *domain.User) ([]domain.BackupFile, error)
	RestoreBackup(ctx context.Context, actor *domain.User, filename string, ip *string) error

	CreateConfig(ctx context.Context, actor *domain.User, cfg *domain.BackupConfig, ip *string) error
	GetConfig(ctx context.Context, actor *domain.User, id int32) (*domain.BackupConfig, error)
	ListConfigs(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.BackupConfig, error)
	UpdateConfig(ctx context.Context, actor *domain.User, id int32, patch *domain.BackupConfigPatch, ip *string) (*domain.BackupConfig, error)
	DeleteConfig(ctx context.Context, actor *domain.User, id int32, ip *string) error
}

type EmailService interface {
	SendRequestCreated(ctx context.Context, ownerEmail, consumerName, toolName string) error
	SendRequestStatusUpdate(ctx context.Context, email, toolName, status string) error
}
