package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository/docstore"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	actor := &domain.User{ID: 2, Username: "carla"}
	tool := &domain.Tool{ID: 5, OwnerID: 1, Name: "Pressure Washer"}

	t.Run("stores the review and refreshes the tool aggregate", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		toolRepo := new(MockToolRepo)
		svc := NewReviewService(store, toolRepo)

		toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)
		toolRepo.On("UpdateRatingAggregate", ctx, int32(5), 5.0, int32(1)).Return(nil)

		err := svc.CreateReview(ctx, actor, &domain.Review{ToolID: 5, Rating: 5, Comment: "like new"})

		assert.NoError(t, err)
		toolRepo.AssertCalled(t, "UpdateRatingAggregate", ctx, int32(5), 5.0, int32(1))

		reviews, err := svc.ListReviewsByTool(ctx, 5)
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Equal(t, int32(2), reviews[0].UserID)
	})

	t.Run("aggregate follows each new review", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		toolRepo := new(MockToolRepo)
		svc := NewReviewService(store, toolRepo)

		toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)
		toolRepo.On("UpdateRatingAggregate", ctx, int32(5), 5.0, int32(1)).Return(nil)
		toolRepo.On("UpdateRatingAggregate", ctx, int32(5), 4.5, int32(2)).Return(nil)

		assert.NoError(t, svc.CreateReview(ctx, actor, &domain.Review{ToolID: 5, Rating: 5}))
		assert.NoError(t, svc.CreateReview(ctx, actor, &domain.Review{ToolID: 5, Rating: 4}))

		toolRepo.AssertCalled(t, "UpdateRatingAggregate", ctx, int32(5), 4.5, int32(2))
	})

	t.Run("rating bounds are enforced", func(t *testing.T) {
		svc := NewReviewService(docstore.NewMemoryStore(), new(MockToolRepo))

		err := svc.CreateReview(ctx, actor, &domain.Review{ToolID: 5, Rating: 6})

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestToolStatistics(t *testing.T) {
	ctx := context.Background()
	actor := &domain.User{ID: 2}
	tool := &domain.Tool{ID: 5, OwnerID: 1, Name: "Pressure Washer"}

	store := docstore.NewMemoryStore()
	toolRepo := new(MockToolRepo)
	svc := NewReviewService(store, toolRepo)

	toolRepo.On("GetByID", ctx, int32(5)).Return(tool, nil)
	toolRepo.On("UpdateRatingAggregate", ctx, int32(5), mock.AnythingOfType("float64"), mock.AnythingOfType("int32")).Return(nil)

	for _, r := range []int32{5, 5, 4} {
		assert.NoError(t, svc.CreateReview(ctx, actor, &domain.Review{ToolID: 5, Rating: r}))
	}

	stats, err := svc.ToolStatistics(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), stats.TotalReviews)
	assert.Equal(t, 4.67, stats.ComputedMean)
	assert.Equal(t, int32(2), stats.Distribution[5])
	assert.Equal(t, int32(1), stats.Distribution[4])
}

func TestPromotions(t *testing.T) {
	ctx := context.Background()

	t.Run("only admins create promotions", func(t *testing.T) {
		svc := NewReviewService(docstore.NewMemoryStore(), new(MockToolRepo))

		err := svc.CreatePromotion(ctx, &domain.User{ID: 2}, &domain.Promotion{Title: "Summer"})

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("active listing filters and orders by priority", func(t *testing.T) {
		svc := NewReviewService(docstore.NewMemoryStore(), new(MockToolRepo))
		admin := &domain.User{ID: 9, IsAdmin: true}

		assert.NoError(t, svc.CreatePromotion(ctx, admin, &domain.Promotion{Title: "Low", Active: true, Priority: 1}))
		assert.NoError(t, svc.CreatePromotion(ctx, admin, &domain.Promotion{Title: "High", Active: true, Priority: 10}))
		assert.NoError(t, svc.CreatePromotion(ctx, admin, &domain.Promotion{Title: "Off", Active: false, Priority: 99}))

		promos, err := svc.ListActivePromotions(ctx)

		assert.NoError(t, err)
		assert.Len(t, promos, 2)
		assert.Equal(t, "High", promos[0].Title)
		assert.Equal(t, "Low", promos[1].Title)
	})
}
