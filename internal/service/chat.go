package service

import (
	"context"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type chatService struct {
	chatRepo repository.ChatRepository
	msgRepo  repository.MessageRepository
	toolRepo repository.ToolRepository
	userRepo repository.UserRepository
}

func NewChatService(
	chatRepo repository.ChatRepository,
	msgRepo repository.MessageRepository,
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		msgRepo:  msgRepo,
		toolRepo: toolRepo,
		userRepo: userRepo,
	}
}

func (s *chatService) CreateChat(ctx context.Context, actor *domain.User, ownerID, consumerID, toolID int32) (*domain.Chat, error) {
	if ownerID == consumerID {
		return nil, apperr.Validation("owner and consumer must differ")
	}
	if actor.ID != ownerID && actor.ID != consumerID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not a participant of this chat")
	}

	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID != ownerID {
		return nil, apperr.Validation("owner does not match the tool")
	}
	if _, err := s.userRepo.GetByID(ctx, consumerID); err != nil {
		return nil, err
	}

	// Idempotent: hand back the existing chat for the pair and tool.
	existing, err := s.chatRepo.GetByParticipants(ctx, ownerID, consumerID, toolID)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	chat := &domain.Chat{OwnerID: ownerID, ConsumerID: consumerID, ToolID: toolID}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *chatService) GetChat(ctx context.Context, actor *domain.User, chatID int32) (*domain.Chat, []domain.Message, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	if !chat.HasParticipant(actor.ID) && !actor.IsAdmin {
		return nil, nil, apperr.Forbidden("not a participant of this chat")
	}
	msgs, err := s.msgRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	return chat, msgs, nil
}

func (s *chatService) ListChats(ctx context.Context, actor *domain.User) ([]domain.Chat, error) {
	return s.chatRepo.ListByUser(ctx, actor.ID)
}

func (s *chatService) SendMessage(ctx context.Context, actor *domain.User, chatID int32, content string) (*domain.Message, error) {
	if content == "" {
		return nil, apperr.Validation("message content is required")
	}
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actor.ID) && !actor.IsAdmin {
		return nil, apperr.Forbidden("not a participant of this chat")
	}
	senderID := actor.ID
	msg := &domain.Message{ChatID: chatID, SenderID: &senderID, Content: content}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
