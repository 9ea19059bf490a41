// Package main is the entry point for the site server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/truepath/advocates-site/internal/adapters/formprobe"
	"github.com/truepath/advocates-site/internal/adapters/http"
	"github.com/truepath/advocates-site/internal/adapters/http/dto"
	"github.com/truepath/advocates-site/internal/adapters/http/handlers"
	"github.com/truepath/advocates-site/internal/content"
	"github.com/truepath/advocates-site/internal/platform/config"
	"github.com/truepath/advocates-site/internal/platform/logging"
	"github.com/truepath/advocates-site/internal/platform/telemetry"
	"github.com/truepath/advocates-site/internal/ports"
	"github.com/truepath/advocates-site/internal/view"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting site",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	site := content.New(content.Options{
		BusinessEmail: cfg.Site.BusinessEmail,
		FormEndpoint:  cfg.Site.FormEndpoint,
		NextURL:       cfg.Site.NextURL(),
	})

	if err := content.Validate(site); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(content.NewChecker(site)); err != nil {
		return fmt.Errorf("registering content health check: %w", err)
	}

	if cfg.Site.FormProbe.Enabled {
		probe, err := formprobe.New(formprobe.Config{
			URL:      cfg.Site.FormEndpoint,
			Timeout:  cfg.Site.FormProbe.Timeout,
			Attempts: cfg.Site.FormProbe.Attempts,
			Breaker: formprobe.BreakerConfig{
				MaxFailures: cfg.Site.FormProbe.MaxFailures,
				OpenFor:     cfg.Site.FormProbe.OpenFor,
			},
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("creating form endpoint probe: %w", err)
		}

		if err := healthRegistry.Register(probe); err != nil {
			return fmt.Errorf("registering form endpoint health check: %w", err)
		}
	}

	pageOpts := view.PageOptions{
		Year:           cfg.Site.Year,
		CopyResetDelay: cfg.Site.CopyResetDelay,
	}

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, logger)

	serviceName := ""
	if telProvider.Enabled() {
		serviceName = cfg.Telemetry.ServiceName
	}

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: serviceName,
		Pages:       handlers.NewPageHandler(site, pageOpts, cfg.Site.ThanksPath, handlers.NewPageMetrics(nil)),
		Content: handlers.NewContentHandler(site, dto.ContentMeta{
			ThanksURL:        cfg.Site.NextURL(),
			CopyResetDelayMS: cfg.Site.CopyResetDelay.Milliseconds(),
		}),
		Health:     handlers.NewHealthHandler(healthRegistry, buildInfo),
		APITimeout: cfg.Site.APITimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal arrives or the server fails, then
// drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}

		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
