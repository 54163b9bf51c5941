package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"toolshare-backend/internal/domain"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, skip, limit int32) ([]domain.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Stats(ctx context.Context, registeredSince time.Time) (*domain.UserStats, error) {
	args := m.Called(ctx, registeredSince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

type MockCategoryRepo struct{ mock.Mock }

func (m *MockCategoryRepo) Create(ctx context.Context, cat *domain.Category) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockToolRepo struct{ mock.Mock }

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *MockToolRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockToolRepo) List(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *MockToolRepo) ClaimAvailability(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepo) ReleaseAvailability(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockToolRepo) UpdateRatingAggregate(ctx context.Context, id int32, avg float64, count int32) error {
	return m.Called(ctx, id, avg, count).Error(0)
}

func (m *MockToolRepo) Stats(ctx context.Context) (*domain.ToolStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolStats), args.Error(1)
}

type MockChatRepo struct{ mock.Mock }

func (m *MockChatRepo) Create(ctx context.Context, chat *domain.Chat) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *MockChatRepo) GetByID(ctx context.Context, id int32) (*domain.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) GetByParticipants(ctx context.Context, user1, user2, toolID int32) (*domain.Chat, error) {
	args := m.Called(ctx, user1, user2, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Chat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chat), args.Error(1)
}

type MockMessageRepo struct{ mock.Mock }

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepo) ListByChat(ctx context.Context, chatID int32) ([]domain.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type MockRequestRepo struct{ mock.Mock }

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepo) Update(ctx context.Context, req *domain.Request) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequestRepo) ListByConsumer(ctx context.Context, consumerID int32) ([]domain.Request, error) {
	args := m.Called(ctx, consumerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

func (m *MockRequestRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Request, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rental, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rental, error) {
	args := m.Called(ctx, toolID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) MarkOverdue(ctx context.Context, now time.Time) (int32, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRentalRepo) Stats(ctx context.Context) (*domain.RentalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalStats), args.Error(1)
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockRatingRepo struct{ mock.Mock }

func (m *MockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepo) GetByID(ctx context.Context, id int32) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Rating, error) {
	args := m.Called(ctx, userID, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rating, error) {
	args := m.Called(ctx, toolID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rating, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) ValuesByTool(ctx context.Context, toolID int32) ([]float64, error) {
	args := m.Called(ctx, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockRatingRepo) Update(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockAdminLogRepo struct{ mock.Mock }

func (m *MockAdminLogRepo) Create(ctx context.Context, log *domain.AdminLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockAdminLogRepo) List(ctx context.Context, skip, limit int32) ([]domain.AdminLog, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminLog), args.Error(1)
}

type MockBackupConfigRepo struct{ mock.Mock }

func (m *MockBackupConfigRepo) Create(ctx context.Context, cfg *domain.BackupConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockBackupConfigRepo) GetByID(ctx context.Context, id int32) (*domain.BackupConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackupConfig), args.Error(1)
}

func (m *MockBackupConfigRepo) List(ctx context.Context, skip, limit int32) ([]domain.BackupConfig, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BackupConfig), args.Error(1)
}

func (m *MockBackupConfigRepo) Update(ctx context.Context, cfg *domain.BackupConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockBackupConfigRepo) Deactivate(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendRequestCreated(ctx context.Context, ownerEmail, consumerName, toolName string) error {
	return m.Called(ctx, ownerEmail, consumerName, toolName).Error(0)
}

func (m *MockEmailService) SendRequestStatusUpdate(ctx context.Context, email, toolName, status string) error {
	return m.Called(ctx, email, toolName, status).Error(0)
}
