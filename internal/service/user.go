package service

import (
	"context"
	"fmt"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	logRepo  repository.AdminLogRepository
}

func NewUserService(userRepo repository.UserRepository, logRepo repository.AdminLogRepository) UserService {
	return &userService{userRepo: userRepo, logRepo: logRepo}
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, actor *domain.User, id int32, patch *domain.UserPatch) (*domain.User, error) {
	if actor.ID != id && !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, *patch.Email); err == nil {
			return nil, apperr.Conflict("email already registered")
		} else if !apperr.IsNotFound(err) {
			return nil, err
		}
	}
	if patch.Username != nil && *patch.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(ctx, *patch.Username); err == nil {
			return nil, apperr.Conflict("username already taken")
		} else if !apperr.IsNotFound(err) {
			return nil, err
		}
	}
	// Only admins may toggle account state through a patch.
	if patch.IsActive != nil && !actor.IsAdmin {
		patch.IsActive = nil
	}
	patch.Apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor *domain.User, skip, limit int32) ([]domain.User, error) {
	if !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	return s.userRepo.List(ctx, skip, limit)
}

func (s *userService) DeactivateUser(ctx context.Context, actor *domain.User, id int32, ip *string) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	_ = s.logRepo.Create(ctx, &domain.AdminLog{
		AdminID:       actor.ID,
		AdminUsername: actor.Username,
		Action:        "deactivate",
		Resource:      "user",
		ResourceID:    fmt.Sprintf("%d", id),
		IPAddress:     ip,
	})
	logger.Info("user deactivated", "user_id", id, "admin_id", actor.ID)
	return nil
}
