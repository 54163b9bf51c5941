package service

import (
	"context"
	"time"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type adminService struct {
	toolRepo   repository.ToolRepository
	userRepo   repository.UserRepository
	rentalRepo repository.RentalRepository
	logRepo    repository.AdminLogRepository
}

func NewAdminService(
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
	rentalRepo repository.RentalRepository,
	logRepo repository.AdminLogRepository,
) AdminService {
	return &adminService{
		toolRepo:   toolRepo,
		userRepo:   userRepo,
		rentalRepo: rentalRepo,
		logRepo:    logRepo,
	}
}

func (s *adminService) Dashboard(ctx context.Context, actor *domain.User) (*domain.Dashboard, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}

	toolStats, err := s.toolRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	userStats, err := s.userRepo.Stats(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	rentalStats, err := s.rentalRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recentLogs, err := s.logRepo.List(ctx, 0, 10)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		ToolStats:   toolStats,
		UserStats:   userStats,
		RentalStats: rentalStats,
		RecentLogs:  recentLogs,
	}, nil
}

func (s *adminService) ListLogs(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.AdminLog, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	if limit <= 0 {
		limit = 100
	}
	return s.logRepo.List(ctx, skip, limit)
}
