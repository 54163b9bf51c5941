package httpapi

import (
	"net/http"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type ReviewHandler struct {
	reviews service.ReviewService
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewCreatePayload struct {
	RentalID int32  `json:"rental_id"`
	Rating   int32  `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p reviewCreatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	review := &domain.Review{
		ToolID:   toolID,
		RentalID: p.RentalID,
		Rating:   p.Rating,
		Comment:  p.Comment,
	}
	if err := h.reviews.CreateReview(r.Context(), currentUser(r), review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	reviews, err := h.reviews.ListReviewsByTool(r.Context(), toolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ToolStatistics(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := h.reviews.ToolStatistics(r.Context(), toolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReviewHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var promo domain.Promotion
	if err := decodeJSON(r, &promo); err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.CreatePromotion(r.Context(), currentUser(r), &promo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, promo)
}

func (h *ReviewHandler) ListActivePromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.reviews.ListActivePromotions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promos)
}
