package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/truepath/advocates-site/internal/adapters/http/handlers"
	"github.com/truepath/advocates-site/internal/adapters/http/middleware"
	"github.com/truepath/advocates-site/internal/platform/telemetry"
)

// DefaultAPITimeout bounds /api/v1 requests when no timeout is configured.
const DefaultAPITimeout = 5 * time.Second

// RouterConfig contains everything SetupRouter wires.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName labels traces. Empty disables the OpenTelemetry middleware.
	ServiceName string

	Pages   *handlers.PageHandler
	Content *handlers.ContentHandler
	Health  *handlers.HealthHandler

	// APITimeout is the deadline for /api/v1 requests.
	APITimeout time.Duration
}

// SetupRouter configures middleware and routes on engine.
// Middleware order (first to last):
//  1. Recovery, which also seeds the context logger
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry
//  5. Logging (skips /-/ and /static/)
//
// Routes:
//   - /, /thanks and /static/*: pages and assets
//   - /-/: probes, build info and metrics
//   - /api/v1/: the content feed, with a request timeout
//   - anything else: HTML 404, or a JSON 404 under /api/ and /-/
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.ServiceName != "" {
		engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	}

	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	if cfg.Pages != nil {
		cfg.Pages.RegisterRoutes(engine)
	}

	timeout := cfg.APITimeout
	if timeout <= 0 {
		timeout = DefaultAPITimeout
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(timeout))

	if cfg.Content != nil {
		cfg.Content.RegisterRoutes(apiV1)
	}
}
