package httpapi

import (
	"net/http"

	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/service"
)

type ChatHandler struct {
	chats    service.ChatService
	requests service.RequestService
}

func NewChatHandler(chats service.ChatService, requests service.RequestService) *ChatHandler {
	return &ChatHandler{chats: chats, requests: requests}
}

type chatCreatePayload struct {
	OwnerID    int32 `json:"owner_id"`
	ConsumerID int32 `json:"consumer_id"`
	ToolID     int32 `json:"tool_id"`
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p chatCreatePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	chat, err := h.chats.CreateChat(r.Context(), currentUser(r), p.OwnerID, p.ConsumerID, p.ToolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, chat)
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chats.ListChats(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

type chatDetailResponse struct {
	Chat     *domain.Chat     `json:"chat"`
	Messages []domain.Message `json:"messages"`
}

func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	chat, messages, err := h.chats.GetChat(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatDetailResponse{Chat: chat, Messages: messages})
}

type messagePayload struct {
	Content string `json:"content"`
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p messagePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	msg, err := h.chats.SendMessage(r.Context(), currentUser(r), id, p.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

type chatRequestPayload struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CreateRequest opens a rental request scoped to this chat.
func (h *ChatHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p chatRequestPayload
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
	req, err := h.requests.CreateFromChat(r.Context(), currentUser(r), id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}
