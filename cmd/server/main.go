package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/quest/api/internal/config"
	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/handler"
	"github.com/forgo/quest/api/internal/jobs"
	"github.com/forgo/quest/api/internal/middleware"
	"github.com/forgo/quest/api/internal/repository"
	"github.com/forgo/quest/api/internal/store"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the store
	var kv store.Store
	if cfg.Store.Backend == "memory" {
		kv = store.NewMemory()
		slog.Warn("using in-memory store, data will not survive a restart")
	} else {
		kv = store.NewSurrealDB(store.Config{
			Host:      cfg.Store.Host,
			Port:      cfg.Store.Port,
			User:      cfg.Store.User,
			Password:  cfg.Store.Password,
			Namespace: cfg.Store.Namespace,
			Database:  cfg.Store.Database,
			Prefix:    cfg.Store.Prefix,
		})
	}

	ctx := context.Background()
	if err := kv.Connect(ctx); err != nil {
		slog.Error("failed to connect to store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()

	slog.Info("connected to store", slog.String("backend", cfg.Store.Backend))

	// Initialize repositories
	userRepo := repository.NewUserRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)
	teamRepo := repository.NewTeamRepository(kv)
	artifactRepo := repository.NewArtifactRepository(kv)

	// Initialize directories
	userDirectory := directory.NewUserDirectory(directory.UserDirectoryConfig{
		Users:    userRepo,
		Sessions: sessionRepo,
		Teams:    teamRepo,
	})

	sessionDirectory := directory.NewSessionDirectory(directory.SessionDirectoryConfig{
		Sessions:  sessionRepo,
		Teams:     teamRepo,
		Users:     userRepo,
		Artifacts: artifactRepo,
	})

	teamDirectory := directory.NewTeamDirectory(directory.TeamDirectoryConfig{
		Teams:    teamRepo,
		Sessions: sessionRepo,
		Users:    userRepo,
	})

	artifactDirectory := directory.NewArtifactDirectory(directory.ArtifactDirectoryConfig{
		Artifacts: artifactRepo,
		Sessions:  sessionRepo,
	})

	// The write gate serializes every mutating operation, shared by HTTP
	// handlers and background jobs
	gate := middleware.NewGate()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.Server.RateLimit,
		Window: time.Minute,
		Burst:  cfg.Server.RateLimitBurst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize session sweeper
	if cfg.Jobs.SweeperEnabled {
		sweeper := jobs.NewSessionSweeper(sessionDirectory, gate, cfg.Jobs.SweeperInterval)
		sweeper.Start()
		defer sweeper.Stop()
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userDirectory)
	sessionHandler := handler.NewSessionHandler(sessionDirectory)
	teamHandler := handler.NewTeamHandler(teamDirectory)
	artifactHandler := handler.NewArtifactHandler(artifactDirectory)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// User endpoints
	mux.HandleFunc("POST /v1/users", userHandler.Create)
	mux.HandleFunc("GET /v1/users/{userId}", userHandler.Get)
	mux.HandleFunc("PATCH /v1/users/{userId}", userHandler.Update)
	mux.HandleFunc("DELETE /v1/users/{userId}", userHandler.Delete)
	mux.HandleFunc("PUT /v1/users/{userId}/current-session", userHandler.SetCurrentSession)

	// Membership endpoints
	mux.HandleFunc("POST /v1/users/{userId}/sessions/{sessionId}/join", userHandler.Join)
	mux.HandleFunc("POST /v1/users/{userId}/sessions/{sessionId}/leave", userHandler.Leave)
	mux.HandleFunc("PUT /v1/users/{userId}/sessions/{sessionId}/team", userHandler.AssignTeam)
	mux.HandleFunc("DELETE /v1/users/{userId}/sessions/{sessionId}/team", userHandler.UnassignTeam)
	mux.HandleFunc("PUT /v1/users/{userId}/sessions/{sessionId}/points", userHandler.SetPoints)
	mux.HandleFunc("POST /v1/users/{userId}/sessions/{sessionId}/found", userHandler.RecordFound)
	mux.HandleFunc("DELETE /v1/users/{userId}/sessions/{sessionId}/found/{artifactId}", userHandler.UnrecordFound)

	// Session endpoints
	mux.HandleFunc("POST /v1/sessions", sessionHandler.Create)
	mux.HandleFunc("GET /v1/sessions/{sessionId}", sessionHandler.Get)
	mux.HandleFunc("PATCH /v1/sessions/{sessionId}", sessionHandler.Update)
	mux.HandleFunc("DELETE /v1/sessions/{sessionId}", sessionHandler.Delete)
	mux.HandleFunc("POST /v1/sessions/{sessionId}/teams/{teamId}", sessionHandler.AddTeam)
	mux.HandleFunc("DELETE /v1/sessions/{sessionId}/teams/{teamId}", sessionHandler.RemoveTeam)
	mux.HandleFunc("POST /v1/sessions/{sessionId}/artifacts/{artifactId}", sessionHandler.AddArtifact)
	mux.HandleFunc("DELETE /v1/sessions/{sessionId}/artifacts/{artifactId}", sessionHandler.RemoveArtifact)

	// Team endpoints
	mux.HandleFunc("POST /v1/teams", teamHandler.Create)
	mux.HandleFunc("GET /v1/teams/{teamId}", teamHandler.Get)
	mux.HandleFunc("PATCH /v1/teams/{teamId}", teamHandler.Update)
	mux.HandleFunc("DELETE /v1/teams/{teamId}", teamHandler.Delete)
	mux.HandleFunc("POST /v1/teams/{teamId}/members/{userId}", teamHandler.AddMember)
	mux.HandleFunc("DELETE /v1/teams/{teamId}/members/{userId}", teamHandler.RemoveMember)

	// Artifact endpoints
	mux.HandleFunc("POST /v1/artifacts", artifactHandler.Create)
	mux.HandleFunc("GET /v1/artifacts/{artifactId}", artifactHandler.Get)
	mux.HandleFunc("PATCH /v1/artifacts/{artifactId}", artifactHandler.Update)
	mux.HandleFunc("DELETE /v1/artifacts/{artifactId}", artifactHandler.Delete)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
		middleware.Serialize(gate),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
