package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-tracker/internal/locations"
)

// LocationsHandler serves the static location reference data used by
// the dashboard filters.
type LocationsHandler struct{}

// NewLocationsHandler constructs handler.
func NewLocationsHandler() *LocationsHandler {
	return &LocationsHandler{}
}

// Regions handles GET /api/locations/regions.
func (h *LocationsHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(locations.Regions())
}

// CitiesByRegion handles GET /api/locations/regions/:regionId/cities.
// Unknown regions yield an empty list.
func (h *LocationsHandler) CitiesByRegion(c *fiber.Ctx) error {
	return c.JSON(locations.CitiesByRegion(c.Params("regionId")))
}

// NeighborhoodsByCity handles GET /api/locations/cities/:cityId/neighborhoods.
func (h *LocationsHandler) NeighborhoodsByCity(c *fiber.Ctx) error {
	return c.JSON(locations.NeighborhoodsByCity(c.Params("cityId")))
}
