package service

import (
	"context"
	"math"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type ratingService struct {
	ratingRepo repository.RatingRepository
	toolRepo   repository.ToolRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, toolRepo repository.ToolRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo, toolRepo: toolRepo}
}

func (s *ratingService) CreateRating(ctx context.Context, actor *domain.User, toolID int32, value float64, comment string) (*domain.Rating, error) {
	if value < 1 || value > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		return nil, err
	}
	if _, err := s.ratingRepo.GetByUserAndTool(ctx, actor.ID, toolID); err == nil {
		return nil, apperr.Conflict("you have already rated this tool")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	rating := &domain.Rating{ToolID: toolID, UserID: actor.ID, Rating: value, Comment: comment}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, actor *domain.User, id int32, patch *domain.RatingPatch) (*domain.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating.UserID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Forbidden("not your rating")
	}
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	patch.Apply(rating)
	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, actor *domain.User, id int32) error {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rating.UserID != actor.ID && !actor.IsAdmin {
		return apperr.Forbidden("not your rating")
	}
	return s.ratingRepo.Delete(ctx, id)
}

func (s *ratingService) ListByTool(ctx context.Context, toolID, skip, limit int32) ([]domain.Rating, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.ratingRepo.ListByTool(ctx, toolID, skip, limit)
}

func (s *ratingService) ListByUser(ctx context.Context, userID, skip, limit int32) ([]domain.Rating, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.ratingRepo.ListByUser(ctx, userID, skip, limit)
}

// Stats computes the aggregate on read. Non-integer values land in the
// bucket of their truncated integer part.
func (s *ratingService) Stats(ctx context.Context, toolID int32) (*domain.RatingStats, error) {
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		return nil, err
	}
	values, err := s.ratingRepo.ValuesByTool(ctx, toolID)
	if err != nil {
		return nil, err
	}

	stats := &domain.RatingStats{
		Distribution: map[int32]int32{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(values) == 0 {
		return stats, nil
	}

	var sum float64
	for _, v := range values {
		sum += v
		bucket := int32(v)
		if bucket >= 1 && bucket <= 5 {
			stats.Distribution[bucket]++
		}
	}
	stats.TotalRatings = int32(len(values))
	stats.AverageRating = math.Round(sum/float64(len(values))*100) / 100
	return stats, nil
}
