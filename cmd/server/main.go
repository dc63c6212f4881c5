package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/studio-site-backend/internal/api"
	"github.com/studio-site-backend/internal/config"
	"github.com/studio-site-backend/internal/publish"
	"github.com/studio-site-backend/internal/service"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/pkg/logger"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting site backend...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Create every record directory once, up front
	if err := store.EnsureDirs(&cfg.Storage, cfg.Upload.UploadDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage directories")
	}
	log.Info().Str("data_dir", cfg.Storage.DataDir).Msg("Storage directories ready")

	// Initialize stores and services
	stores := store.New(&cfg.Storage, log)
	publisher := publish.New(cfg.Storage.BlogHTMLDir(), log)
	services := service.NewServices(stores, publisher, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
