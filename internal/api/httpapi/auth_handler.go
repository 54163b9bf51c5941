package httpapi

import (
	"net/http"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var p registerPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.auth.Register(r.Context(), p.Email, p.Username, p.Password, p.FullName, p.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login accepts form credentials: username carries the email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperr.Validation("invalid form body"))
		return
	}
	email := r.FormValue("username")
	password := r.FormValue("password")
	pair, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var p refreshPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	pair, err := h.auth.Refresh(r.Context(), p.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}
