package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/daygrove/daygrove-backend/internal/config"
	"github.com/daygrove/daygrove-backend/internal/database"
	"github.com/daygrove/daygrove-backend/internal/handlers"
	"github.com/daygrove/daygrove-backend/internal/middleware"
	"github.com/daygrove/daygrove-backend/internal/routes"
	"github.com/daygrove/daygrove-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Redis holds all journaling data and sessions; without it there is no app.
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Postgres is analytics-only. The app runs fine without it; activity
	// recording just becomes a no-op.
	activityEnabled := false
	if cfg.PostgresURI != "" {
		log.Printf("Connecting to PostgreSQL...")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Printf("⚠️  WARNING: failed to connect to PostgreSQL: %v", err)
			log.Println("   Activity analytics will not be available")
		} else if err := database.InitPostgresTables(); err != nil {
			log.Printf("⚠️  WARNING: failed to init PostgreSQL tables: %v", err)
			log.Println("   Activity analytics will not be available")
		} else {
			activityEnabled = true
			defer database.DisconnectPostgres()
		}
	} else {
		log.Println("POSTGRES_URI not set. Activity analytics will not be available")
	}

	// Services
	kv := services.NewRedisKV(database.RedisClient)
	sessions := services.NewSessionService(database.RedisClient)
	users := services.NewUserService(kv)
	entries := services.NewEntryService(kv)
	goals := services.NewGoalService(kv)

	feedHub := services.NewFeedHub(database.RedisClient)
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()
	go feedHub.Start(feedCtx)

	community := services.NewCommunityService(kv, feedHub)
	insights := services.NewTemplateInsights()

	var activity *services.ActivityService
	if activityEnabled {
		activity = services.NewActivityService(database.PostgresDB)
	} else {
		activity = services.NewActivityService(nil)
	}

	var cloudinary *services.CloudinaryService
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		svc, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Printf("⚠️  WARNING: failed to initialize Cloudinary: %v", err)
			log.Println("   Avatar uploads will not be available")
		} else {
			cloudinary = svc
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Cloudinary credentials not found. Avatar uploads will not be available")
	}

	// Handlers
	api := &routes.API{
		Auth:      handlers.NewAuthHandler(users, sessions, activity),
		User:      handlers.NewUserHandler(users, sessions),
		Entries:   handlers.NewEntriesHandler(entries, sessions, activity),
		Goals:     handlers.NewGoalsHandler(goals, sessions),
		Community: handlers.NewCommunityHandler(community, sessions),
		Insights:  handlers.NewInsightsHandler(insights),
		Activity:  handlers.NewActivityHandler(activity, sessions, cfg.AdminToken),
		Feed:      handlers.NewFeedHandler(feedHub),
	}
	if cloudinary != nil {
		api.Upload = handlers.NewUploadHandler(cloudinary, users, sessions)
	}

	// Router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → HostCheck → GlobalRateLimit → AuthRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, host check, per-IP + auth rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, api)

	log.Printf("🚀 Daygrove backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
