package httpapi

import (
	"net/http"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type RatingHandler struct {
	ratings service.RatingService
}

func NewRatingHandler(ratings service.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

type ratingCreatePayload struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p ratingCreatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	rating, err := h.ratings.CreateRating(r.Context(), currentUser(r), toolID, p.Rating, p.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	ratings, err := h.ratings.ListByTool(r.Context(), toolID,
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	ratings, err := h.ratings.ListByUser(r.Context(), userID,
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := h.ratings.Stats(r.Context(), toolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *RatingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch domain.RatingPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	rating, err := h.ratings.UpdateRating(r.Context(), currentUser(r), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.ratings.DeleteRating(r.Context(), currentUser(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
