package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/draftdeck/draftdeck/internal"
	"github.com/draftdeck/draftdeck/internal/assemble"
	"github.com/draftdeck/draftdeck/internal/browser"
	"github.com/draftdeck/draftdeck/internal/format"
	"github.com/draftdeck/draftdeck/internal/handler"
	"github.com/draftdeck/draftdeck/internal/metrics"
	"github.com/draftdeck/draftdeck/internal/middleware"
	"github.com/draftdeck/draftdeck/internal/pdfcache"
	"github.com/draftdeck/draftdeck/internal/render"
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/draftdeck/draftdeck/internal/storage"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize storage backend for the PDF cache
	var store storage.Storage
	switch cfg.StorageProvider {
	case "r2":
		store, err = storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		}, logger)
	default:
		store, err = storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	logger.Info("Storage ready", "provider", cfg.StorageProvider)

	// Initialize browser pool and renderer
	pool := browser.NewPool(browser.PoolConfig{
		MaxBrowsers:   cfg.MaxBrowsers,
		IdleTimeout:   cfg.BrowserIdleTimeout,
		ChromePath:    cfg.ChromePath,
		LaunchTimeout: cfg.BrowserLaunchWait,
	}, logger)

	renderer := render.New(pool, render.Config{Timeout: cfg.RenderTimeout}, logger)

	// Initialize PDF cache
	cache := pdfcache.New(store, pdfcache.Config{
		Enabled: cfg.CacheEnabled,
		TTL:     cfg.CacheTTL,
	}, logger)

	// Initialize services
	registry := format.NewRegistry(logger)
	assembler := assemble.New("")
	pdfService := service.NewPDFService(registry, assembler, renderer, cache, logger)

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(pdfService, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics (basic auth when credentials are configured)
	mux.Handle("GET /metrics", handler.MetricsHandler(cfg.MetricsUsername, cfg.MetricsPassword))

	documentHandler.RegisterRoutes(mux)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: middleware.RequestLogging(logger)(metrics.Middleware(mux)),
	}

	// Periodically export browser pool gauges
	poolTicker := time.NewTicker(10 * time.Second)
	defer poolTicker.Stop()
	go func() {
		for range poolTicker.C {
			metrics.PoolObserved(pool.ActiveBrowsers(), pool.ActiveLeases())
		}
	}()

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// Drain in-flight renders before killing the browsers
	if err := pool.Shutdown(shutdownCtx); err != nil {
		logger.Error("Browser pool shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
