package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

// CreateEntryRequest mirrors the client's entry payload. The server assigns
// id, userId and date; a userId in the body is ignored.
type CreateEntryRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Mood         int      `json:"mood"`
	Motivation   int      `json:"motivation"`
	Energy       int      `json:"energy"`
	LifeAreas    []string `json:"lifeAreas"`
	Emotions     []string `json:"emotions"`
	Challenges   []string `json:"challenges"`
	Achievements []string `json:"achievements"`
	Gratitude    []string `json:"gratitude"`
	Goals        string   `json:"goals"`
	GoalAchieved bool     `json:"goalAchieved"`
	Insights     string   `json:"insights"`
	IsPublic     bool     `json:"isPublic"`
}

type CreateEntryResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Entry   *models.JournalEntry `json:"entry,omitempty"`
}

type ListEntriesResponse struct {
	Success bool                  `json:"success"`
	Entries []models.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
}

type EntryStatsResponse struct {
	Success bool                  `json:"success"`
	Stats   services.JournalStats `json:"stats"`
}

type EntriesHandler struct {
	entries  *services.EntryService
	sessions *services.SessionService
	activity *services.ActivityService
}

func NewEntriesHandler(entries *services.EntryService, sessions *services.SessionService, activity *services.ActivityService) *EntriesHandler {
	return &EntriesHandler{entries: entries, sessions: sessions, activity: activity}
}

// List handles GET /api/entries?userId=.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.List(r.Context(), userID)
	if err != nil {
		log.Printf("[Entries] failed to list entries for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	writeJSON(w, http.StatusOK, ListEntriesResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}

// Create handles POST /api/entries. The new entry goes to the head of the
// user's list; nothing is persisted when validation or the store write fails.
func (h *EntriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" && req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title or content is required")
		return
	}

	entry, err := h.entries.Append(r.Context(), userID, models.JournalEntry{
		Title:        req.Title,
		Content:      req.Content,
		Mood:         req.Mood,
		Motivation:   req.Motivation,
		Energy:       req.Energy,
		LifeAreas:    req.LifeAreas,
		Emotions:     req.Emotions,
		Challenges:   req.Challenges,
		Achievements: req.Achievements,
		Gratitude:    req.Gratitude,
		Goals:        req.Goals,
		GoalAchieved: req.GoalAchieved,
		Insights:     req.Insights,
		IsPublic:     req.IsPublic,
	})
	if errors.Is(err, services.ErrUnknownTag) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("[Entries] failed to save entry for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to save entry")
		return
	}

	if err := h.activity.Record(r.Context(), userID, "entry_created", r.URL.Path); err != nil {
		log.Printf("[Entries] failed to record activity: %v", err)
	}

	writeJSON(w, http.StatusCreated, CreateEntryResponse{
		Success: true,
		Message: "Entry saved",
		Entry:   &entry,
	})
}

// Stats handles GET /api/entries/stats?userId=. Statistics are recomputed
// from the full entry list on every call.
func (h *EntriesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.List(r.Context(), userID)
	if err != nil {
		log.Printf("[Entries] failed to load entries for stats for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	writeJSON(w, http.StatusOK, EntryStatsResponse{
		Success: true,
		Stats:   services.ComputeJournalStats(entries, time.Now()),
	})
}

// resolveUser authenticates the request and reconciles the userId query
// parameter with the session user.
func (h *EntriesHandler) resolveUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return "", false
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID required")
		return "", false
	}
	if !requireUserMatch(w, sessionUserID, userID) {
		return "", false
	}
	return userID, true
}
