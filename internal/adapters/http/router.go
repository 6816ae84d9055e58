package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"github.com/lurra-labs/elevate/internal/pkg/metrics"
)

// SetupRoutes registers all routes and the middleware stack.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(errorEnvelope{
				Status: statusInvalidReq,
				Error:  "Rate limit exceeded, please slow down.",
			})
		},
	}))

	// Configured CORS origin, applied to every response
	app.Use(CORSMiddleware(deps.Snapshots))

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	// Liveness
	app.Get("/", LivenessHandler())

	// /v1/ without a dataset segment gets the usage hint
	help := HelpHandler()
	app.Get("/v1", help)
	app.Options("/v1", help)

	// Elevation query — GET, HEAD (implied by GET), and OPTIONS
	query := timeout.NewWithContext(ElevationHandler(deps), 15*time.Second)
	app.Get("/v1/:dataset", query)
	app.Options("/v1/:dataset", query)

	// GraphQL
	app.Post("/graphql", GraphQLHandler(deps))
}
