package handler

import (
	"errors"
	"strconv"

	"go-dashboard-api/internal/middleware"
	"go-dashboard-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivities returns the activity log visible to the current user
// GET /api/v1/activities
// Query params: limit (default 200)
func (h *ActivityHandler) GetActivities(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "200"))
	if err != nil || limit <= 0 {
		limit = 200
	}

	activities, err := h.activityService.ListVisible(middleware.UserFromCtx(c), limit)
	if err != nil {
		if errors.Is(err, service.ErrActivityAccessDenied) {
			return c.Status(403).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	return c.JSON(activities)
}
