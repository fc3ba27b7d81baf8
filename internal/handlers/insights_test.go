package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daygrove/daygrove-backend/internal/services"
)

func TestInsightsGenerate(t *testing.T) {
	h := NewInsightsHandler(services.NewTemplateInsights())

	body := `{"content":"long run today","mood":9,"lifeAreas":["health"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp InsightsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Insights == "" {
		t.Fatalf("expected success with insight text, got %+v", resp)
	}
}

func TestInsightsGenerateRequiresContent(t *testing.T) {
	h := NewInsightsHandler(services.NewTemplateInsights())

	req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader(`{"mood":5}`))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInsightsGenerateBadJSON(t *testing.T) {
	h := NewInsightsHandler(services.NewTemplateInsights())

	req := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
