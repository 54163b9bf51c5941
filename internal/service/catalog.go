package service

import (
	"context"
	"fmt"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
	catRepo  repository.CategoryRepository
	logRepo  repository.AdminLogRepository
}

func NewToolService(toolRepo repository.ToolRepository, catRepo repository.CategoryRepository, logRepo repository.AdminLogRepository) ToolService {
	return &toolService{toolRepo: toolRepo, catRepo: catRepo, logRepo: logRepo}
}

func (s *toolService) CreateTool(ctx context.Context, actor *domain.User, tool *domain.Tool) error {
	if tool.Name == "" {
		return apperr.Validation("tool name is required")
	}
	if tool.DailyPrice < 0 {
		return apperr.Validation("daily price must not be negative")
	}
	if !tool.Condition.Valid() {
		return apperr.Validation("invalid tool condition")
	}
	if _, err := s.catRepo.GetByID(ctx, tool.CategoryID); err != nil {
		return err
	}
	tool.OwnerID = actor.ID
	tool.IsAvailable = true
	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return err
	}
	logger.Info("tool created", "tool_id", tool.ID, "owner_id", actor.ID)
	return nil
}

func (s *toolService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) ListTools(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return s.toolRepo.List(ctx, filter)
}

func (s *toolService) UpdateTool(ctx context.Context, actor *domain.User, id int32, patch *domain.ToolPatch) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not enough permissions")
	}
	if patch.Condition != nil && !patch.Condition.Valid() {
		return nil, apperr.Validation("invalid tool condition")
	}
	if patch.DailyPrice != nil && *patch.DailyPrice < 0 {
		return nil, apperr.Validation("daily price must not be negative")
	}
	if patch.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	patch.Apply(tool)
	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}
	if actor.IsAdmin && tool.OwnerID != actor.ID {
		_ = s.logRepo.Create(ctx, &domain.AdminLog{
			AdminID:       actor.ID,
			AdminUsername: actor.Username,
			Action:        "update",
			Resource:      "tool",
			ResourceID:    fmt.Sprintf("%d", id),
		})
	}
	return tool, nil
}

func (s *toolService) DeleteTool(ctx context.Context, actor *domain.User, id int32, ip *string) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tool.OwnerID != actor.ID && !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if err := s.toolRepo.Delete(ctx, id); err != nil {
		return err
	}
	if actor.IsAdmin && tool.OwnerID != actor.ID {
		_ = s.logRepo.Create(ctx, &domain.AdminLog{
			AdminID:       actor.ID,
			AdminUsername: actor.Username,
			Action:        "delete",
			Resource:      "tool",
			ResourceID:    fmt.Sprintf("%d", id),
			IPAddress:     ip,
		})
	}
	logger.Info("tool deleted", "tool_id", id, "actor_id", actor.ID)
	return nil
}

type categoryService struct {
	catRepo repository.CategoryRepository
}

func NewCategoryService(catRepo repository.CategoryRepository) CategoryService {
	return &categoryService{catRepo: catRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, actor *domain.User, cat *domain.Category) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if cat.Name == "" {
		return apperr.Validation("category name is required")
	}
	if _, err := s.catRepo.GetByName(ctx, cat.Name); err == nil {
		return apperr.Conflict("category already exists")
	} else if !apperr.IsNotFound(err) {
		return err
	}
	return s.catRepo.Create(ctx, cat)
}

func (s *categoryService) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	return s.catRepo.GetByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catRepo.List(ctx)
}
