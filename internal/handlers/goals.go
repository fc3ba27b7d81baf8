package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/internal/services"
)

type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	TargetDate  string `json:"targetDate"`
}

// UpdateGoalRequest is the PUT /api/goals body.
type UpdateGoalRequest struct {
	GoalID  string            `json:"goalId"`
	UserID  string            `json:"userId"`
	Updates models.GoalUpdate `json:"updates"`
}

type GoalResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Goal    *models.Goal `json:"goal,omitempty"`
}

type ListGoalsResponse struct {
	Success bool          `json:"success"`
	Goals   []models.Goal `json:"goals"`
	Total   int           `json:"total"`
}

type GoalsHandler struct {
	goals    *services.GoalService
	sessions *services.SessionService
}

func NewGoalsHandler(goals *services.GoalService, sessions *services.SessionService) *GoalsHandler {
	return &GoalsHandler{goals: goals, sessions: sessions}
}

// List handles GET /api/goals?userId=.
func (h *GoalsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	goals, err := h.goals.List(r.Context(), userID)
	if err != nil {
		log.Printf("[Goals] failed to list goals for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	writeJSON(w, http.StatusOK, ListGoalsResponse{Success: true, Goals: goals, Total: len(goals)})
}

// Create handles POST /api/goals.
func (h *GoalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	goal, err := h.goals.Create(r.Context(), sessionUserID, models.Goal{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Progress:    req.Progress,
		Status:      req.Status,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		log.Printf("[Goals] failed to create goal for %s: %v", sessionUserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, GoalResponse{Success: true, Message: "Goal created", Goal: &goal})
}

// Update handles PUT /api/goals: shallow-merge of the partial update over the
// goal with the matching id.
func (h *GoalsHandler) Update(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.GoalID == "" {
		writeError(w, http.StatusBadRequest, "User ID and Goal ID required")
		return
	}
	if !requireUserMatch(w, sessionUserID, req.UserID) {
		return
	}

	goal, err := h.goals.Update(r.Context(), req.UserID, req.GoalID, req.Updates)
	if errors.Is(err, services.ErrGoalNotFound) {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		log.Printf("[Goals] failed to update goal %s for %s: %v", req.GoalID, req.UserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, GoalResponse{Success: true, Goal: &goal})
}

// Delete handles DELETE /api/goals?userId=&goalId=. Deleting an id that does
// not exist succeeds and leaves the list unchanged.
func (h *GoalsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := requireSession(r.Context(), w, r, h.sessions)
	if !ok {
		return
	}

	userID := r.URL.Query().Get("userId")
	goalID := r.URL.Query().Get("goalId")
	if userID == "" || goalID == "" {
		writeError(w, http.StatusBadRequest, "User ID and Goal ID required")
		return
	}
	if !requireUserMatch(w, sessionUserID, userID) {
		return
	}

	if err := h.goals.Delete(r.Context(), userID, goalID); err != nil {
		log.Printf("[Goals] failed to delete goal %s for %s: %v", goalID, userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, GoalResponse{Success: true})
}

func (h *GoalsHandler) resolveUser(w http.ResponseWriter, r *http.Request) (string, bool) {
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
