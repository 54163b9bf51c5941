package service

import (
	"context"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.noteRepo.ListByUser(ctx, actor.ID, skip, limit)
}

func (s *notificationService) MarkAsRead(ctx context.Context, actor *domain.User, id int32) error {
	return s.noteRepo.MarkAsRead(ctx, id, actor.ID)
}
