package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/daybook-app/daybook-backend/internal/auth"
	"github.com/daybook-app/daybook-backend/internal/config"
	"github.com/daybook-app/daybook-backend/internal/database"
	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/journal"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/session"
	"github.com/daybook-app/daybook-backend/internal/store"
	"github.com/daybook-app/daybook-backend/internal/web"
	"github.com/daybook-app/daybook-backend/pkg/logger"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	appLog := logger.New()
	if err := appLog.Initialize(cfg.LogDir, cfg.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	if cfg.SecretKey == "" {
		appLog.Warnf("SECRET_KEY not set: session cookies will not be signed")
		appLog.Warnf("Generate one with: openssl rand -base64 32")
	}

	appLog.Infof("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		appLog.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer database.DisconnectPostgres()
	appLog.Infof("Connected to PostgreSQL")

	appLog.Infof("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		appLog.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer database.DisconnectRedis()
	appLog.Infof("Connected to Redis")

	renderer, err := web.NewRenderer()
	if err != nil {
		appLog.Fatalf("Failed to parse templates: %v", err)
	}

	users := store.NewPostgresUserStore(database.PostgresDB)
	entries := store.NewPostgresEntryStore(database.PostgresDB)
	sessions := session.NewRedisStore(database.RedisClient)
	flashes := session.NewRedisFlashStore(database.RedisClient)

	authService := auth.NewService(users, sessions, cfg.SessionTTL, cfg.RememberTTL)
	journalService := journal.NewService(entries)

	server := handlers.NewServer(authService, journalService, users, flashes,
		renderer, appLog, cfg.SecretKey, cfg.IsProduction())

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.RateLimitMiddleware)
		r.Use(middleware.LoginRateLimit)
		appLog.Infof("Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no session handling)
	r.Get("/health", handlers.Health)

	routes.SetupRoutes(r, server)

	appLog.Infof("Daybook running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		appLog.Fatalf("Failed to start server: %v", err)
	}
}
