package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
)

func newChatFixture() (*MockChatRepo, *MockMessageRepo, *MockToolRepo, *MockUserRepo, ChatService) {
	chatRepo := new(MockChatRepo)
	msgRepo := new(MockMessageRepo)
	toolRepo := new(MockToolRepo)
	userRepo := new(MockUserRepo)
	svc := NewChatService(chatRepo, msgRepo, toolRepo, userRepo)
	return chatRepo, msgRepo, toolRepo, userRepo, svc
}

func TestCreateChat(t *testing.T) {
	ctx := context.Background()
	consumer := &domain.User{ID: 2, Username: "carla"}
	tool := &domain.Tool{ID: 5, OwnerID: 1, Name: "Tile Cutter"}

	t.Run("creates a chat for the pair and tool", func(t *testing.T) {
		chatRepo, _, toolRepo, userRepo, svc := newChatFixture()
		toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(consumer, nil)
		chatRepo.On("GetByParticipants", ctx, int32(1), int32(2), int32(5)).Return(nil, apperr.NotFound("chat"))
		chatRepo.On("Create", ctx, mock.AnythingOfType("*domain.Chat")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Chat).ID = 7
		}).Return(nil)

		chat, err := svc.CreateChat(ctx, consumer, 1, 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, int32(7), chat.ID)
		assert.Equal(t, int32(1), chat.OwnerID)
		assert.Equal(t, int32(2), chat.ConsumerID)
	})

	t.Run("second create returns the existing chat", func(t *testing.T) {
		chatRepo, _, toolRepo, userRepo, svc := newChatFixture()
		existing := &domain.Chat{ID: 7, OwnerID: 1, ConsumerID: 2, ToolID: 5}
		toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(consumer, nil)
		chatRepo.On("GetByParticipants", ctx, int32(1), int32(2), int32(5)).Return(existing, nil)

		chat, err := svc.CreateChat(ctx, consumer, 1, 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, int32(7), chat.ID)
		chatRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("owner and consumer must differ", func(t *testing.T) {
		_, _, _, _, svc := newChatFixture()

		_, err := svc.CreateChat(ctx, consumer, 2, 2, 5)

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("owner must match the tool", func(t *testing.T) {
		_, _, toolRepo, _, svc := newChatFixture()
		toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)

		actor := &domain.User{ID: 3}
		_, err := svc.CreateChat(ctx, actor, 3, 2, 5)

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("third parties cannot open a chat", func(t *testing.T) {
		_, _, _, _, svc := newChatFixture()

		stranger := &domain.User{ID: 42}
		_, err := svc.CreateChat(ctx, stranger, 1, 2, 5)

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	chat := &domain.Chat{ID: 7, OwnerID: 1, ConsumerID: 2, ToolID: 5}

	t.Run("participant sends a message", func(t *testing.T) {
		chatRepo, msgRepo, _, _, svc := newChatFixture()
		chatRepo.On("GetByID", ctx, int32(7)).Return(chat, nil)
		msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)

		msg, err := svc.SendMessage(ctx, &domain.User{ID: 2}, 7, "is it still available?")

		assert.NoError(t, err)
		assert.Equal(t, int32(2), *msg.SenderID)
		assert.Equal(t, "is it still available?", msg.Content)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, _, _, _, svc := newChatFixture()

		_, err := svc.SendMessage(ctx, &domain.User{ID: 2}, 7, "")

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("non-participant is rejected", func(t *testing.T) {
		chatRepo, msgRepo, _, _, svc := newChatFixture()
		chatRepo.On("GetByID", ctx, int32(7)).Return(chat, nil)

		_, err := svc.SendMessage(ctx, &domain.User{ID: 42}, 7, "hi")

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		msgRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})
}

func TestGetChat(t *testing.T) {
	ctx := context.Background()
	chat := &domain.Chat{ID: 7, OwnerID: 1, ConsumerID: 2, ToolID: 5}

	t.Run("returns the chat with its messages", func(t *testing.T) {
		chatRepo, msgRepo, _, _, svc := newChatFixture()
		chatRepo.On("GetByID", ctx, int32(7)).Return(chat, nil)
		msgRepo.On("ListByChat", ctx, int32(7)).Return([]domain.Message{
			{ID: 1, ChatID: 7, Content: "hello"},
			{ID: 2, ChatID: 7, Content: "hi"},
		}, nil)

		got, msgs, err := svc.GetChat(ctx, &domain.User{ID: 1}, 7)

		assert.NoError(t, err)
		assert.Equal(t, int32(7), got.ID)
		assert.Len(t, msgs, 2)
	})

	t.Run("admin can read any chat", func(t *testing.T) {
		chatRepo, msgRepo, _, _, svc := newChatFixture()
		chatRepo.On("GetByID", ctx, int32(7)).Return(chat, nil)
		msgRepo.On("ListByChat", ctx, int32(7)).Return([]domain.Message{}, nil)

		_, _, err := svc.GetChat(ctx, &domain.User{ID: 9, IsAdmin: true}, 7)

		assert.NoError(t, err)
	})
}
