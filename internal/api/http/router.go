package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teacher-account-service/internal/api/http/handlers"
	"github.com/spec-kit/teacher-account-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Teachers       *handlers.TeachersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	teachers := app.Group("/teachers")
	teachers.Post("/", cfg.Teachers.Register)
	teachers.Post("/login", cfg.Teachers.Login)

	protected := teachers.Group("", cfg.AuthMiddleware.Handle, auth.RequireTeacher())
	protected.Get("/profile", cfg.Teachers.Profile)
	protected.Put("/profile", cfg.Teachers.UpdateProfile)
	protected.Get("/checkLogin", cfg.Teachers.CheckLogin)
}
