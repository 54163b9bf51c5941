package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"toolshare-backend/internal/domain"
)

func TestMemoryStoreReviews(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("create assigns ids and timestamps", func(t *testing.T) {
		review := &domain.Review{ToolID: 5, UserID: 2, Rating: 4, Comment: "works well"}
		assert.NoError(t, store.CreateReview(ctx, review))

		assert.NotEmpty(t, review.ID)
		assert.False(t, review.CreatedAt.IsZero())
	})

	t.Run("list filters by tool", func(t *testing.T) {
		assert.NoError(t, store.CreateReview(ctx, &domain.Review{ToolID: 5, UserID: 3, Rating: 5}))
		assert.NoError(t, store.CreateReview(ctx, &domain.Review{ToolID: 6, UserID: 3, Rating: 1}))

		reviews, err := store.ListReviewsByTool(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
		for _, r := range reviews {
			assert.Equal(t, int32(5), r.ToolID)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := &domain.Review{ToolID: 7, Rating: 3}
		b := &domain.Review{ToolID: 7, Rating: 3}
		assert.NoError(t, store.CreateReview(ctx, a))
		assert.NoError(t, store.CreateReview(ctx, b))
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestMemoryStorePromotions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.CreatePromotion(ctx, &domain.Promotion{Title: "A", Active: true, Priority: 2}))
	assert.NoError(t, store.CreatePromotion(ctx, &domain.Promotion{Title: "B", Active: true, Priority: 8}))
	assert.NoError(t, store.CreatePromotion(ctx, &domain.Promotion{Title: "C", Active: false, Priority: 5}))

	promos, err := store.ListActivePromotions(ctx)

	assert.NoError(t, err)
	assert.Len(t, promos, 2)
	assert.Equal(t, "B", promos[0].Title)
	assert.Equal(t, "A", promos[1].Title)
}
