package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/Avangel08/furniro-sub001/internal/api/http/handlers"
	"github.com/Avangel08/furniro-sub001/internal/auth"
	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	StaffSession    *handlers.SessionHandler
	CustomerSession *handlers.SessionHandler
	// Banners is optional; the banner routes are skipped when nil.
	Banners        *handlers.BannerHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")

	staffAuth := api.Group("/auth")
	staffAuth.Post("/login", cfg.StaffSession.Login)
	staffAuth.Post("/refresh", cfg.StaffSession.Refresh)
	staffAuth.Get("/me", cfg.StaffSession.Me)
	staffAuth.Post("/logout", cfg.StaffSession.Logout)

	customerAuth := staffAuth.Group("/customer")
	customerAuth.Post("/login", cfg.CustomerSession.Login)
	customerAuth.Post("/refresh", cfg.CustomerSession.Refresh)
	customerAuth.Get("/me", cfg.CustomerSession.Me)
	customerAuth.Post("/logout", cfg.CustomerSession.Logout)

	if cfg.Banners != nil {
		banners := api.Group("/banners", cfg.AuthMiddleware.Handle, auth.RequireStaffRole(domain.RoleAdmin, domain.RoleManager))
		banners.Post("/schedule/run", cfg.Banners.RunSchedule)
	}
}
