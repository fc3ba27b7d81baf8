package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

type UploadAvatarResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	URL     string       `json:"url,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type UploadHandler struct {
	cloudinary *services.CloudinaryService
	users      *services.UserService
	sessions   *services.SessionService
}

func NewUploadHandler(cloudinary *services.CloudinaryService, users *services.UserService, sessions *services.SessionService) *UploadHandler {
	return &UploadHandler{cloudinary: cloudinary, users: users, sessions: sessions}
}

// Avatar handles POST /api/upload/avatar: multipart upload of a profile
// image, stored on Cloudinary, URL saved on the user record.
func (h *UploadHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	if h.cloudinary == nil {
		writeError(w, http.StatusServiceUnavailable, "Uploads are not available")
		return
	}

	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	// 5MB is plenty for an avatar
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	email := r.FormValue("email")
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
		log.Printf("[Upload] failed to fetch %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !requireUserMatch(w, sessionUserID, user.ID) {
		return
	}

	_, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	url, err := h.cloudinary.UploadAvatarFromHeader(r.Context(), fileHeader, "avatars")
	if err != nil {
		log.Printf("[Upload] avatar upload failed for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	updated, err := h.users.Update(r.Context(), email, services.UserUpdate{Avatar: &url})
	if err != nil {
		log.Printf("[Upload] failed to save avatar URL for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to save avatar")
		return
	}

	public := updated.Public()
	writeJSON(w, http.StatusOK, UploadAvatarResponse{
		Success: true,
		Message: "Avatar uploaded",
		URL:     url,
		User:    &public,
	})
}
