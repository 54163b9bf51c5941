package httpapi

import (
	"net/http"
	"strconv"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type ToolHandler struct {
	tools service.ToolService
}

func NewToolHandler(tools service.ToolService) *ToolHandler {
	return &ToolHandler{tools: tools}
}

type toolCreatePayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	CategoryID  int32   `json:"category_id"`
	DailyPrice  float64 `json:"daily_price"`
	Warranty    float64 `json:"warranty"`
	Condition   string  `json:"condition"`
	ImageURL    string  `json:"image_url"`
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p toolCreatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	tool := &domain.Tool{
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Model:       p.Model,
		CategoryID:  p.CategoryID,
		DailyPrice:  p.DailyPrice,
		Warranty:    p.Warranty,
		Condition:   domain.ToolCondition(p.Condition),
		ImageURL:    p.ImageURL,
	}
	if err := h.tools.CreateTool(r.Context(), currentUser(r), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tool, err := h.tools.GetTool(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// List applies every supplied filter conjunctively.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ToolFilter{
		Query: q.Get("q"),
		Brand: q.Get("brand"),
		Skip:  queryInt32(r, "skip", 0),
		Limit: queryInt32(r, "limit", 100),
	}
	if raw := q.Get("category_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			id := int32(v)
			filter.CategoryID = &id
		}
	}
	if raw := q.Get("condition"); raw != "" {
		cond := domain.ToolCondition(raw)
		filter.Condition = &cond
	}
	if raw := q.Get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := q.Get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw := q.Get("available"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &v
		}
	}
	if raw := q.Get("owner_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			id := int32(v)
			filter.OwnerID = &id
		}
	}

	tools, err := h.tools.ListTools(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch domain.ToolPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	tool, err := h.tools.UpdateTool(r.Context(), currentUser(r), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tools.DeleteTool(r.Context(), currentUser(r), id, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
