package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

// AuthRequest covers signin, signup and signout on the single auth endpoint.
type AuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse returns the user (without credentials) and a session token.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

type AuthHandler struct {
	users    *services.UserService
	sessions *services.SessionService
	activity *services.ActivityService
}

func NewAuthHandler(users *services.UserService, sessions *services.SessionService, activity *services.ActivityService) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, activity: activity}
}

// Authenticate handles POST /api/auth with action signin, signup or signout.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case "signin":
		h.signin(w, r, req)
	case "signup":
		h.signup(w, r, req)
	case "signout":
		h.signout(w, r)
	default:
		writeError(w, http.StatusBadRequest, "Invalid action")
	}
}

func (h *AuthHandler) signin(w http.ResponseWriter, r *http.Request, req AuthRequest) {
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("[Auth] signin failed for %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Printf("[Auth] failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordEvent(r, user.ID, "signin")
	public := user.Public()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: &public, Token: token})
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request, req AuthRequest) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Email, password and name are required")
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, req.Name, req.Password)
	if errors.Is(err, services.ErrUserExists) {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		log.Printf("[Auth] signup failed for %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Printf("[Auth] failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordEvent(r, user.ID, "signup")
	public := user.Public()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: &public, Token: token})
}

func (h *AuthHandler) signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if err := h.sessions.Invalidate(r.Context(), token); err != nil {
		log.Printf("[Auth] failed to invalidate session: %v", err)
	}
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "Signed out"})
}

func (h *AuthHandler) recordEvent(r *http.Request, userID, event string) {
	if err := h.activity.Record(r.Context(), userID, event, r.URL.Path); err != nil {
		log.Printf("[Auth] failed to record %s event: %v", event, err)
	}
}
