package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-insights/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Report *handlers.ReportHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/report", cfg.Report.Statistics)
	api.Get("/snapshot", cfg.Report.Snapshot)
	api.Get("/filter", cfg.Report.Filter)
}
