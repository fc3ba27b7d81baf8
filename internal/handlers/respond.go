package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/daygrove/daygrove-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// extractBearerToken returns the token from an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireSession resolves the acting user from the bearer token. Writes a 401
// and returns ("", false) when the request carries no valid session.
func requireSession(ctx context.Context, w http.ResponseWriter, r *http.Request, sessions *services.SessionService) (string, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	userID, ok, err := sessions.Validate(ctx, token)
	if err != nil || !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}

// requireUserMatch enforces that a userId named in the request belongs to the
// session user. Writes a 403 on mismatch.
func requireUserMatch(w http.ResponseWriter, sessionUserID, requestUserID string) bool {
	if requestUserID != sessionUserID {
		writeError(w, http.StatusForbidden, "You can only access your own data")
		return false
	}
	return true
}
