package docstore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

const (
	collectionReviews    = "reviews"
	collectionPromotions = "promotions"
)

// firestoreStore keeps the free-form review and promotion documents in
// Firestore, away from the relational schema.
type firestoreStore struct {
	client *firestore.Client
}

type reviewDoc struct {
	ToolID    int32               `firestore:"tool_id"`
	UserID    int32               `firestore:"user_id"`
	RentalID  int32               `firestore:"rental_id"`
	Rating    int32               `firestore:"rating"`
	Comment   string              `firestore:"comment"`
	Reply     *domain.ReviewReply `firestore:"reply"`
	Likes     int32               `firestore:"likes"`
	Reported  bool                `firestore:"reported"`
	CreatedAt time.Time           `firestore:"created_at"`
	UpdatedAt time.Time           `firestore:"updated_at"`
}

type promotionDoc struct {
	Title           string     `firestore:"title"`
	Description     string     `firestore:"description"`
	Type            string     `firestore:"type"`
	DiscountPercent float64    `firestore:"discount_percent"`
	ToolIDs         []int32    `firestore:"tool_ids"`
	CategoryIDs     []int32    `firestore:"category_ids"`
	StartsAt        *time.Time `firestore:"starts_at"`
	EndsAt          *time.Time `firestore:"ends_at"`
	Code            string     `firestore:"code"`
	UsageLimit      int32      `firestore:"usage_limit"`
	UsageCount      int32      `firestore:"usage_count"`
	Active          bool       `firestore:"active"`
	Priority        int32      `firestore:"priority"`
}

// NewFirestoreStore connects to the project's Firestore database. An empty
// credentialsFile falls back to application default credentials.
func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (repository.ReviewStore, func() error, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to firestore: %w", err)
	}
	return &firestoreStore{client: client}, client.Close, nil
}

func (s *firestoreStore) CreateReview(ctx context.Context, review *domain.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	ref, _, err := s.client.Collection(collectionReviews).Add(ctx, reviewDoc{
		ToolID:    review.ToolID,
		UserID:    review.UserID,
		RentalID:  review.RentalID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Reply:     review.Reply,
		Likes:     review.Likes,
		Reported:  review.Reported,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	})
	if err != nil {
		return err
	}
	review.ID = ref.ID
	return nil
}

func (s *firestoreStore) ListReviewsByTool(ctx context.Context, toolID int32) ([]domain.Review, error) {
	iter := s.client.Collection(collectionReviews).
		Where("tool_id", "==", toolID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reviews []domain.Review
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc reviewDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, domain.Review{
			ID:        snap.Ref.ID,
			ToolID:    doc.ToolID,
			UserID:    doc.UserID,
			RentalID:  doc.RentalID,
			Rating:    doc.Rating,
			Comment:   doc.Comment,
			Reply:     doc.Reply,
			Likes:     doc.Likes,
			Reported:  doc.Reported,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return reviews, nil
}

func (s *firestoreStore) CreatePromotion(ctx context.Context, promo *domain.Promotion) error {
	ref, _, err := s.client.Collection(collectionPromotions).Add(ctx, promotionDoc{
		Title:           promo.Title,
		Description:     promo.Description,
		Type:            promo.Type,
		DiscountPercent: promo.DiscountPercent,
		ToolIDs:         promo.ToolIDs,
		CategoryIDs:     promo.CategoryIDs,
		StartsAt:        promo.StartsAt,
		EndsAt:          promo.EndsAt,
		Code:            promo.Code,
		UsageLimit:      promo.UsageLimit,
		UsageCount:      promo.UsageCount,
		Active:          promo.Active,
		Priority:        promo.Priority,
	})
	if err != nil {
		return err
	}
	promo.ID = ref.ID
	return nil
}

func (s *firestoreStore) ListActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	iter := s.client.Collection(collectionPromotions).
		Where("active", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var promos []domain.Promotion
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc promotionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		promos = append(promos, domain.Promotion{
			ID:              snap.Ref.ID,
			Title:           doc.Title,
			Description:     doc.Description,
			Type:            doc.Type,
			DiscountPercent: doc.DiscountPercent,
			ToolIDs:         doc.ToolIDs,
			CategoryIDs:     doc.CategoryIDs,
			StartsAt:        doc.StartsAt,
			EndsAt:          doc.EndsAt,
			Code:            doc.Code,
			UsageLimit:      doc.UsageLimit,
			UsageCount:      doc.UsageCount,
			Active:          doc.Active,
			Priority:        doc.Priority,
		})
	}
	return promos, nil
}
