package httpapi

import (
	"net/http"

	"toolshare-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type rentalCreatePayload struct {
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p rentalCreatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(p.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(p.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.CreateRental(r.Context(), currentUser(r), p.ToolID, start, end, p.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.GetRental(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rentals, err := h.rentals.ListByUser(r.Context(), currentUser(r), userID,
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rentals, err := h.rentals.ListByTool(r.Context(), toolID,
		queryInt32(r, "skip", 0), queryInt32(r, "limit", 100))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.Activate(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type returnPayload struct {
	ReturnedOn string `json:"returned_on"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p returnPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	returnedOn, err := parseDate(p.ReturnedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.Return(r.Context(), currentUser(r), id, returnedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.Cancel(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) CheckOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.rentals.CheckOverdue(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"marked_overdue": count})
}

func (h *RentalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rentals.Stats(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
