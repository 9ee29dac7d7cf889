package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/subscout/subscout/internal/api"
	"github.com/subscout/subscout/internal/cache"
	"github.com/subscout/subscout/internal/config"
	"github.com/subscout/subscout/internal/metrics"
	"github.com/subscout/subscout/internal/provider"
	"github.com/subscout/subscout/internal/provider/addic7ed"
	"github.com/subscout/subscout/internal/provider/opensubtitles"
	"github.com/subscout/subscout/internal/search"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting subscout", "config", *configPath)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to create directories", "error", err)
		os.Exit(1)
	}

	// Show-index cache
	store, err := cache.NewStore(cfg.Cache.Path, cfg.ShowExpiration())
	if err != nil {
		slog.Error("Failed to open cache", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Cache initialized", "path", cfg.Cache.Path, "expiration", cfg.ShowExpiration())

	// Metrics
	var registry *prometheus.Registry
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		m = metrics.New(registry)
	}

	// Providers
	var providers []provider.Provider

	a7, err := addic7ed.NewProvider(cfg.Addic7ed.Username, cfg.Addic7ed.Password, store)
	if err != nil {
		slog.Error("Failed to configure addic7ed", "error", err)
		os.Exit(1)
	}
	providers = append(providers, a7)
	providers = append(providers, opensubtitles.NewProvider())

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	for _, p := range providers {
		if err := p.Initialize(initCtx); err != nil {
			slog.Warn("Provider initialization failed", "provider", p.Name(), "error", err)
		}
	}
	cancel()

	// Search service and HTTP server
	searchService := search.NewService(providers, m)
	apiServer := api.NewServer(searchService, registry)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: apiServer.Handler(),
	}

	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	for _, p := range providers {
		if err := p.Terminate(shutdownCtx); err != nil {
			slog.Warn("Provider termination failed", "provider", p.Name(), "error", err)
		}
	}
}
