package docstore

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

// MemoryStore is an in-process ReviewStore for local development and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	nextID     int64
	reviews    map[string]domain.Review
	promotions map[string]domain.Promotion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:     1,
		reviews:    map[string]domain.Review{},
		promotions: map[string]domain.Promotion{},
	}
}

var _ repository.ReviewStore = (*MemoryStore)(nil)

func (s *MemoryStore) nextKey() string {
	id := strconv.FormatInt(s.nextID, 10)
	s.nextID++
	return id
}

func (s *MemoryStore) CreateReview(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	review.ID = s.nextKey()
	review.CreatedAt = now
	review.UpdatedAt = now
	s.reviews[review.ID] = *review
	return nil
}

func (s *MemoryStore) ListReviewsByTool(_ context.Context, toolID int32) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var reviews []domain.Review
	for _, r := range s.reviews {
		if r.ToolID == toolID {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *MemoryStore) CreatePromotion(_ context.Context, promo *domain.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	promo.ID = s.nextKey()
	s.promotions[promo.ID] = *promo
	return nil
}

func (s *MemoryStore) ListActivePromotions(_ context.Context) ([]domain.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var promos []domain.Promotion
	for _, p := range s.promotions {
		if p.Active {
			promos = append(promos, p)
		}
	}
	sort.Slice(promos, func(i, j int) bool {
		return promos[i].Priority > promos[j].Priority
	})
	return promos, nil
}
