package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-tracker/internal/api/http/handlers"
	"github.com/spec-kit/field-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Employees      *handlers.EmployeesHandler
	Locations      *handlers.LocationsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/stats", cfg.Health.Stats)

	api := app.Group("/api")

	employees := api.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	// The status listing must be registered ahead of the :id routes so
	// "status" is not parsed as an identifier.
	employees.Get("/status/:status", cfg.Employees.ListByStatus)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Post("/", cfg.Employees.Create)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)
	employees.Put("/:id/location", cfg.Employees.UpdateLocation)
	employees.Put("/:id/assign", cfg.Employees.Assign)
	employees.Put("/:id/status", cfg.Employees.UpdateStatus)

	locations := api.Group("/locations")
	locations.Get("/regions", cfg.Locations.Regions)
	locations.Get("/regions/:regionId/cities", cfg.Locations.CitiesByRegion)
	locations.Get("/cities/:cityId/neighborhoods", cfg.Locations.NeighborhoodsByCity)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)
}
