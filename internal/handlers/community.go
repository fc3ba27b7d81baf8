package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

type CreatePostRequest struct {
	UserID       string   `json:"userId"`
	UserName     string   `json:"userName"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	LifeAreas    []string `json:"lifeAreas"`
	Mood         int      `json:"mood"`
	GoalAchieved bool     `json:"goalAchieved"`
}

type PostResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Post    *models.CommunityPost `json:"post,omitempty"`
}

type ListPostsResponse struct {
	Success bool                   `json:"success"`
	Posts   []models.CommunityPost `json:"posts"`
}

type LikeRequest struct {
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}

type LikeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Liked   bool   `json:"liked"`
	Likes   int    `json:"likes"`
}

type CommunityHandler struct {
	community *services.CommunityService
	sessions  *services.SessionService
}

func NewCommunityHandler(community *services.CommunityService, sessions *services.SessionService) *CommunityHandler {
	return &CommunityHandler{community: community, sessions: sessions}
}

// List handles GET /api/community. Public; serves the latest 20 posts.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.community.List(r.Context())
	if err != nil {
		log.Printf("[Community] failed to list posts: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	writeJSON(w, http.StatusOK, ListPostsResponse{Success: true, Posts: posts})
}

// Create handles POST /api/community. The stored list keeps only the 100 most
// recent posts.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.UserName == "" || req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !requireUserMatch(w, sessionUserID, req.UserID) {
		return
	}

	post, err := h.community.Create(r.Context(), models.CommunityPost{
		UserID:       req.UserID,
		Author:       req.UserName,
		Avatar:       "/placeholder.svg?height=40&width=40",
		Title:        req.Title,
		Content:      req.Content,
		LifeAreas:    req.LifeAreas,
		Mood:         req.Mood,
		GoalAchieved: req.GoalAchieved,
	})
	if err != nil {
		log.Printf("[Community] failed to create post for %s: %v", req.UserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{Success: true, Message: "Post created", Post: &post})
}

// Like handles POST /api/community/like: toggles the caller's like on a post
// and returns the new membership state and count, not the whole post.
func (h *CommunityHandler) Like(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PostID == "" || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Post ID and User ID required")
		return
	}
	if !requireUserMatch(w, sessionUserID, req.UserID) {
		return
	}

	liked, likes, err := h.community.ToggleLike(r.Context(), req.PostID, req.UserID)
	if errors.Is(err, services.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("[Community] failed to toggle like on %s: %v", req.PostID, err)
		writeError(w, http.StatusInternalServerError, "Failed to like post")
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{Success: true, Liked: liked, Likes: likes})
}
