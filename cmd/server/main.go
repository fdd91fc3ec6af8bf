// Worldmark - travel-map selection server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"worldmark/internal/api"
	"worldmark/internal/config"
	"worldmark/internal/identity"
	"worldmark/internal/itinerary"
	"worldmark/internal/live"
	"worldmark/internal/mapview"
	"worldmark/internal/middleware"
	"worldmark/internal/retention"
	"worldmark/internal/selection"
	"worldmark/internal/store"
	"worldmark/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Selection state model with write-through persistence, plus the
	// map surface that drives it.
	selections := selection.NewStore(repo)
	surface := mapview.NewSurface(selections)

	// Live fan-out of selection changes to the same browser's open tabs.
	hub := live.NewHub()
	selections.SetOnChange(hub.Broadcast)
	wsHandler := live.NewWebSocketHandler(hub, selections, cfg.FrontendURL, cfg.IsDevelopment())

	// Itinerary generation: Gemini when a key is configured, otherwise
	// the deterministic stub.
	var generator itinerary.Generator = itinerary.StubGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := itinerary.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ItineraryTimeout)
		if err != nil {
			slog.Warn("Failed to initialize Gemini, falling back to stub generator", "error", err)
		} else {
			generator = gemini
			slog.Info("Gemini itinerary generator enabled", "model", cfg.GeminiModel)
		}
	} else {
		slog.Info("No GEMINI_API_KEY set, itinerary generation uses the stub")
	}

	// Initialize handlers.
	baseHandler := api.NewHandler(repo, selections, surface)
	selectionHandler := api.NewSelectionHandler(baseHandler)
	mapHandler := api.NewMapHandler(baseHandler)
	itineraryHandler := api.NewItineraryHandler(generator)
	healthHandler := api.NewHealthHandler(repo)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS([]string{"*"}))

	// Health stays outside the identity middleware so probes don't mint
	// anonymous users.
	healthHandler.RegisterHealth(r)

	r.Group(func(r chi.Router) {
		r.Use(identity.Middleware(repo, cfg.IsDevelopment()))

		selectionHandler.RegisterRoutes(r)
		mapHandler.RegisterRoutes(r)
		itineraryHandler.RegisterRoutes(r)

		// WebSocket endpoint.
		r.Get("/ws/selections", wsHandler.ServeHTTP)

		// Serve embedded frontend (SPA catch-all).
		r.Handle("/*", web.SPAHandler())
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket connections stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start retention sweep for stale anonymous identities.
	retention.StartWorker(ctx, repo, cfg.Retention, cfg.SweepInterval, func(userID string) {
		hub.CloseUser(userID)
		surface.CloseUser(userID)
	})

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
