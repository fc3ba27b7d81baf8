package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/daygrove/daygrove-backend/internal/services"
)

// RecordActivityRequest is the JSON body for POST /api/activity.
type RecordActivityRequest struct {
	Path string `json:"path"`
}

type ActivityReportResponse struct {
	Success bool                    `json:"success"`
	Report  services.ActivityReport `json:"report"`
}

type ActivityHandler struct {
	activity   *services.ActivityService
	sessions   *services.SessionService
	adminToken string
}

func NewActivityHandler(activity *services.ActivityService, sessions *services.SessionService, adminToken string) *ActivityHandler {
	return &ActivityHandler{activity: activity, sessions: sessions, adminToken: adminToken}
}

// Record handles POST /api/activity. The session is optional; anonymous page
// views are recorded without a user id. Best-effort either way.
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	var body RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	path := body.Path
	if path == "" {
		path = r.URL.Path
	}
	if len(path) > 500 {
		path = path[:500]
	}

	var userID string
	if token := extractBearerToken(r.Header.Get("Authorization")); token != "" {
		if id, ok, _ := h.sessions.Validate(r.Context(), token); ok {
			userID = id
		}
	}

	if err := h.activity.Record(r.Context(), userID, "page_view", path); err != nil {
		log.Printf("[Activity] failed to record event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to record activity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Report handles GET /api/admin/activity?from=&to= (dates as 2006-01-02,
// default last 30 days). Guarded by the admin token.
func (h *ActivityHandler) Report(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now().UTC()
	to := now
	from := now.AddDate(0, 0, -30)
	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			from = t.UTC()
		}
	}
	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			to = t.UTC()
		}
	}
	if from.After(to) {
		from, to = to, from
	}

	report, err := h.activity.Report(r.Context(), from, to)
	if err != nil {
		log.Printf("[Activity] report failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, ActivityReportResponse{Success: true, Report: report})
}

func (h *ActivityHandler) authorized(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	got := r.Header.Get("X-Admin-Token")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.adminToken)) == 1
}
