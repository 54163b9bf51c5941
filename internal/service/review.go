package service

import (
	"context"
	"math"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type reviewService struct {
	store    repository.ReviewStore
	toolRepo repository.ToolRepository
}

func NewReviewService(store repository.ReviewStore, toolRepo repository.ToolRepository) ReviewService {
	return &reviewService{store: store, toolRepo: toolRepo}
}

func (s *reviewService) CreateReview(ctx context.Context, actor *domain.User, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}
	if _, err := s.toolRepo.GetByID(ctx, review.ToolID); err != nil {
		return err
	}
	review.UserID = actor.ID
	if err := s.store.CreateReview(ctx, review); err != nil {
		return err
	}
	if err := s.recomputeAggregate(ctx, review.ToolID); err != nil {
		logger.Warn("tool aggregate recompute failed", "tool_id", review.ToolID, "error", err)
	}
	return nil
}

func (s *reviewService) ListReviewsByTool(ctx context.Context, toolID int32) ([]domain.Review, error) {
	return s.store.ListReviewsByTool(ctx, toolID)
}

// ToolStatistics joins the relational row with the document store
// distribution for one tool.
func (s *reviewService) ToolStatistics(ctx context.Context, toolID int32) (*domain.ToolStatistics, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.store.ListReviewsByTool(ctx, toolID)
	if err != nil {
		return nil, err
	}

	stats := &domain.ToolStatistics{
		Tool:         tool,
		TotalReviews: int32(len(reviews)),
		Distribution: map[int32]int32{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	var sum float64
	for _, r := range reviews {
		sum += float64(r.Rating)
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Distribution[r.Rating]++
		}
	}
	if len(reviews) > 0 {
		stats.ComputedMean = math.Round(sum/float64(len(reviews))*100) / 100
	}
	return stats, nil
}

func (s *reviewService) CreatePromotion(ctx context.Context, actor *domain.User, promo *domain.Promotion) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("not enough permissions")
	}
	if promo.Title == "" {
		return apperr.Validation("promotion title is required")
	}
	return s.store.CreatePromotion(ctx, promo)
}

func (s *reviewService) ListActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	return s.store.ListActivePromotions(ctx)
}

func (s *reviewService) recomputeAggregate(ctx context.Context, toolID int32) error {
	reviews, err := s.store.ListReviewsByTool(ctx, toolID)
	if err != nil {
		return err
	}
	var sum float64
	for _, r := range reviews {
		sum += float64(r.Rating)
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = math.Round(sum/float64(len(reviews))*100) / 100
	}
	return s.toolRepo.UpdateRatingAggregate(ctx, toolID, avg, int32(len(reviews)))
}
