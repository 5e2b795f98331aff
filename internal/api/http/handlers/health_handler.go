package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-tracker/internal/observability"
	"github.com/spec-kit/field-tracker/internal/store"
)

// HealthHandler responds to liveness/readiness probes and exposes the
// in-memory counters.
type HealthHandler struct {
	serviceName string
	version     string
	store       store.Store
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, st store.Store, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: st, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The store lives in process memory, so
// readiness amounts to the process being up; the employee count is
// reported for operators.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"store": fiber.Map{
				"status":    "ok",
				"employees": len(h.store.AllEmployees()),
			},
		},
	})
}

// Stats handles GET /health/stats with a snapshot of request counters.
func (h *HealthHandler) Stats(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
