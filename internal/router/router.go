package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/handler"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Import *handler.ImportHandler
	Status *handler.StatusHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group, no rate limits)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus scrape endpoint
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	importLimiter := middleware.NewImportRateLimiter()
	jobLimiter := middleware.NewJobPollRateLimiter()
	statusLimiter := middleware.NewStatusRateLimiter()

	api.Post("/competitors/import", h.Import.Submit, importLimiter.Handler())
	api.Get("/competitors/import/jobs/:jobId", h.Import.Job, jobLimiter.Handler())
	api.Get("/competitors/:channelId/status", h.Status.Get, statusLimiter.Handler())
}
