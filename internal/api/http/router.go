package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invyfy/invyfy-api/internal/api/http/handlers"
	"github.com/invyfy/invyfy-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Projects       *handlers.ProjectsHandler
	Invoices       *handlers.InvoicesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Welcome)
	app.Get("/health", cfg.Health.Status)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	projects := api.Group("/projects", cfg.AuthMiddleware.Handle)
	projects.Get("/", cfg.Projects.List)
	projects.Post("/", cfg.Projects.Create)
	projects.Get("/:id", cfg.Projects.Get)
	projects.Put("/:id", cfg.Projects.Update)
	projects.Delete("/:id", cfg.Projects.Delete)

	invoices := api.Group("/invoices", cfg.AuthMiddleware.Handle)
	// stats before :id so the literal segment wins
	invoices.Get("/stats", cfg.Invoices.Stats)
	invoices.Get("/", cfg.Invoices.List)
	invoices.Post("/", cfg.Invoices.Create)
	invoices.Get("/:id", cfg.Invoices.Get)
	invoices.Put("/:id", cfg.Invoices.Update)
	invoices.Delete("/:id", cfg.Invoices.Delete)
}
