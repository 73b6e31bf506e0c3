package handler

import (
	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/middleware"
	"go-dashboard-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}

// GetCapabilities returns the derived capability set for the current user,
// consumed by the frontend to hide controls the user cannot use
// GET /api/v1/capabilities
func (h *DashboardHandler) GetCapabilities(c *fiber.Ctx) error {
	return c.JSON(access.CapabilitiesFor(middleware.UserFromCtx(c)))
}
