package httpapi

import (
	"net/http"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type RequestHandler struct {
	requests service.RequestService
}

func NewRequestHandler(requests service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requests.GetRequest(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListAsConsumer(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requests.ListAsConsumer(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) ListAsOwner(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requests.ListAsOwner(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

type transitionFunc func(r *http.Request, id int32) (*domain.Request, error)

func (h *RequestHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := fn(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.Confirm(r.Context(), currentUser(r), id)
	})
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.Reject(r.Context(), currentUser(r), id)
	})
}

func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.Cancel(r.Context(), currentUser(r), id)
	})
}

type payPayload struct {
	YapeApprovalCode string `json:"yape_approval_code"`
}

func (h *RequestHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		var p payPayload
		if err := decodeJSON(r, &p); err != nil {
			return nil, err
		}
		return h.requests.Pay(r.Context(), currentUser(r), id, p.YapeApprovalCode)
	})
}

func (h *RequestHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.ConfirmDelivery(r.Context(), currentUser(r), id)
	})
}

func (h *RequestHandler) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.ConfirmReturn(r.Context(), currentUser(r), id)
	})
}

func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Request, error) {
		return h.requests.Complete(r.Context(), currentUser(r), id)
	})
}

func (h *RequestHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	payments, err := h.requests.ListPayments(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
