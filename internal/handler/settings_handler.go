package handler

import (
	"go-dashboard-api/internal/middleware"
	"go-dashboard-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns all settings
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

// GetSetting returns a single setting by key
// GET /api/v1/settings/:key
func (h *SettingsHandler) GetSetting(c *fiber.Ctx) error {
	setting, err := h.settingsService.Get(c.Params("key"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
	}
	return c.JSON(setting)
}

// PutSetting creates or updates a setting
// PUT /api/v1/settings/:key
func (h *SettingsHandler) PutSetting(c *fiber.Ctx) error {
	var req service.SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	setting, err := h.settingsService.Put(c.Params("key"), &req, middleware.UserFromCtx(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Setting saved successfully",
		"data":    setting,
	})
}
