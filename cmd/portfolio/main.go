package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/haryokuncoro/portfolio-website/internal/config"
	"github.com/haryokuncoro/portfolio-website/internal/handlers"
	"github.com/haryokuncoro/portfolio-website/internal/middleware"
	"github.com/haryokuncoro/portfolio-website/internal/mount"
)

func main() {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Mounted headers
	mounts, err := mount.NewRegistry([]byte(cfg.MountSecret), cfg.MountTTL, cfg.MountMax, logger)
	if err != nil {
		log.Fatalf("failed to create mount registry: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go mounts.Run(ctx, time.Minute)

	// Handlers
	h := handlers.New(cfg, mounts, logger)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	h.Register(r)

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment, "base_url", cfg.BaseURL)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdown
	logger.Info("shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}
