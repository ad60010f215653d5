package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cytomat_exporter/internal/capability"
	"cytomat_exporter/internal/collector"
	"cytomat_exporter/internal/config"
	"cytomat_exporter/internal/feed"
	"cytomat_exporter/internal/rack"
	"cytomat_exporter/internal/types"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)

	// Refuse to start when the device cannot do what this deployment relies on
	variant, err := authorizeDevice(cfg)
	if err != nil {
		logger.Error("Device check failed", "variant", cfg.Variant, "error", err)
		os.Exit(1)
	}
	logger.Info("Starting Cytomat Exporter", "listen_addr", cfg.ListenAddr, "variant", variant.String())

	var racks []types.NamedRack
	if cfg.RacksFile != "" {
		racks, err = rack.LoadFile(cfg.RacksFile)
		if err != nil {
			logger.Error("Failed to load racks", "path", cfg.RacksFile, "error", err)
			os.Exit(1)
		}
		logger.Info("Loaded racks", "path", cfg.RacksFile, "count", len(racks))
	}

	// Create and register Prometheus collector
	cytomatCollector := collector.NewCytomatCollector(variant, racks, logger)
	prometheus.MustRegister(cytomatCollector)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Decode the response feed in the background
	input, err := openFeed(cfg.FeedPath)
	if err != nil {
		logger.Error("Failed to open feed", "path", cfg.FeedPath, "error", err)
		os.Exit(1)
	}
	defer input.Close()

	go func() {
		reader := feed.NewReader(cytomatCollector, logger)
		if err := reader.Run(ctx, input); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Feed error", "error", err)
		}
	}()

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", healthHandler)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")
	stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}

	logger.Info("Exporter stopped")
}

// authorizeDevice parses the configured variant and runs every required
// capability through the command gate.
func authorizeDevice(cfg *config.Config) (capability.Variant, error) {
	variant, err := cfg.DeviceVariant()
	if err != nil {
		return 0, err
	}
	required, err := cfg.RequiredCapabilities()
	if err != nil {
		return 0, err
	}
	if err := capability.AuthorizeAll(variant, required...); err != nil {
		return 0, err
	}
	return variant, nil
}

// openFeed opens the response feed file, or stdin when no path is set.
func openFeed(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// setupLogger creates a structured logger based on configuration.
// Logs go to stderr since stdin/stdout may carry the feed.
func setupLogger(level, format string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// healthHandler responds to health check requests.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}
