package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lurra-labs/elevate/internal/adapters/backend"
	"github.com/lurra-labs/elevate/internal/adapters/http"
	"github.com/lurra-labs/elevate/internal/adapters/valkey"
	"github.com/lurra-labs/elevate/internal/core/ports"
	"github.com/lurra-labs/elevate/internal/core/usecases"
	"github.com/lurra-labs/elevate/internal/pkg/config"
	"github.com/lurra-labs/elevate/internal/pkg/logging"
	"github.com/lurra-labs/elevate/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("elevate-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Result cache (optional)
	var cache ports.CacheService
	if cfg.Valkey.Enabled {
		vk, err := valkey.New(cfg.Valkey.Addr)
		if err != nil {
			slog.Warn("valkey unavailable, queries will not be cached", "error", err)
		} else {
			defer vk.Close()
			cache = vk
		}
	}

	// Configuration snapshot, loaded once and memoized. The warm load
	// surfaces dataset misconfiguration at startup instead of on the
	// first request.
	snapshots := config.NewCache(config.Loader(cfg))
	snap, err := snapshots.Snapshot(ctx)
	if err != nil {
		log.Fatalf("build config snapshot: %v", err)
	}
	slog.Info("datasets registered",
		"count", len(snap.Datasets),
		"max_locations_per_request", snap.MaxLocationsPerRequest,
	)

	// Elevation pipeline
	relay := backend.NewRelay(30 * time.Second)
	elevationSvc := usecases.NewElevationService(snapshots, relay, cache)

	deps := &http.Dependencies{
		Elevation: elevationSvc,
		Snapshots: snapshots,
		Debug:     cfg.Server.Debug,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    256 * 1024, // queries are GET plus small GraphQL bodies
		AppName:      "Elevate API",
	})
	app.Use(recover.New())

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
