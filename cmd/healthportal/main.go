// Package main is the entry point for the community health portal API.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"healthportal/internal/ai"
	"healthportal/internal/auth"
	"healthportal/internal/config"
	"healthportal/internal/database"
	"healthportal/internal/handlers"
	"healthportal/internal/metrics"
	"healthportal/internal/router"
	"healthportal/internal/storage"
	"healthportal/internal/store"
)

func main() {
	// Structured logger on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present (local development convenience).
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to S3-compatible object storage (optional — uploads are
	// disabled without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Initialize the AI provider (optional — article drafting and symptom
	// analysis are disabled without it).
	provider := ai.NewGroq(ai.ProviderConfig{
		APIKey:  cfg.GroqAPIKey,
		Model:   cfg.GroqModel,
		BaseURL: cfg.GroqBaseURL,
	})
	if provider != nil {
		slog.Info("ai provider initialized", "provider", provider.Name(), "model", cfg.GroqModel)
	} else {
		slog.Warn("GROQ_API_KEY not set — AI drafting and symptom analysis disabled")
	}

	// Initialize data stores.
	contentStore := store.NewContentStore(db)
	engagementStore := store.NewEngagementStore(db)
	doctorStore := store.NewDoctorStore(db)
	mediaStore := store.NewMediaStore(db)

	// Metrics and viewer token verification.
	collector := metrics.NewCollector()
	verifier := auth.NewVerifier(cfg.AuthSecret)

	// Create handler groups with their dependencies.
	articleHandlers := handlers.NewArticles(contentStore, engagementStore, doctorStore, provider, collector)
	healthHandlers := handlers.NewHealth(provider, collector)
	doctorHandlers := handlers.NewDoctors(doctorStore)
	mediaHandlers := handlers.NewMedia(storageClient, mediaStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(verifier, collector, articleHandlers, healthHandlers, doctorHandlers, mediaHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate endpoints that wait on LLM responses (typically 10-30s,
	// up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
