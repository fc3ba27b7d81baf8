package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/services"
)

type InsightsResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Insights string `json:"insights,omitempty"`
}

type InsightsHandler struct {
	generator services.InsightGenerator
}

func NewInsightsHandler(generator services.InsightGenerator) *InsightsHandler {
	return &InsightsHandler{generator: generator}
}

// Generate handles POST /api/insights. Stateless: nothing is read from or
// written to the store.
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	insights, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		log.Printf("[Insights] generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, InsightsResponse{Success: true, Insights: insights})
}
