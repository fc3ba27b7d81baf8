package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

// UpdateUserRequest is the PUT /api/user body.
type UpdateUserRequest struct {
	Email   string              `json:"email"`
	Updates services.UserUpdate `json:"updates"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type UserHandler struct {
	users    *services.UserService
	sessions *services.SessionService
}

func NewUserHandler(users *services.UserService, sessions *services.SessionService) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

// Get handles GET /api/user?email=. The email must belong to the session user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	user, err := h.users.Get(r.Context(), email)
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("[User] failed to fetch %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !requireUserMatch(w, sessionUserID, user.ID) {
		return
	}

	public := user.Public()
	writeJSON(w, http.StatusOK, UserResponse{Success: true, User: &public})
}

// Update handles PUT /api/user. Shallow-merges the updates over the stored
// record; the email itself never changes.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	existing, err := h.users.Get(r.Context(), req.Email)
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("[User] failed to fetch %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !requireUserMatch(w, sessionUserID, existing.ID) {
		return
	}

	user, err := h.users.Update(r.Context(), req.Email, req.Updates)
	if err != nil {
		log.Printf("[User] failed to update %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	public := user.Public()
	writeJSON(w, http.StatusOK, UserResponse{Success: true, User: &public})
}
