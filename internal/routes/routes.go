package routes

import (
	"github.com/daygrove/daygrove-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

// API collects the handlers the router wires up. Feed and Upload may be nil
// when their backing services are not configured.
type API struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Entries   *handlers.EntriesHandler
	Goals     *handlers.GoalsHandler
	Community *handlers.CommunityHandler
	Insights  *handlers.InsightsHandler
	Upload    *handlers.UploadHandler
	Activity  *handlers.ActivityHandler
	Feed      *handlers.FeedHandler
}

func SetupRoutes(r *chi.Mux, api *API) {
	// Auth: single endpoint dispatching on the action field
	r.Post("/api/auth", api.Auth.Authenticate)

	// User profile
	r.Get("/api/user", api.User.Get)
	r.Put("/api/user", api.User.Update)

	// Journal entries and stats
	r.Get("/api/entries", api.Entries.List)
	r.Post("/api/entries", api.Entries.Create)
	r.Get("/api/entries/stats", api.Entries.Stats)

	// Goals
	r.Get("/api/goals", api.Goals.List)
	r.Post("/api/goals", api.Goals.Create)
	r.Put("/api/goals", api.Goals.Update)
	r.Delete("/api/goals", api.Goals.Delete)

	// Community posts
	r.Get("/api/community", api.Community.List)
	r.Post("/api/community", api.Community.Create)
	r.Post("/api/community/like", api.Community.Like)

	// Insights
	r.Post("/api/insights", api.Insights.Generate)

	// Activity tracking + admin report
	r.Post("/api/activity", api.Activity.Record)
	r.Get("/api/admin/activity", api.Activity.Report)

	// Avatar upload
	if api.Upload != nil {
		r.Post("/api/upload/avatar", api.Upload.Avatar)
	}

	// WebSocket live feed for community posts
	if api.Feed != nil {
		r.Get("/ws/community", api.Feed.Live)
	}
}
