package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/internal/apierror"
	"Shelved/internal/services"
)

type SettingsHandler struct {
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req struct {
		AdminEmail          string `json:"admin_email"`
		ReminderFreqMinutes int    `json:"reminder_freq_minutes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apierror.BadRequest("invalid request body"))
	}
	settings, err := h.service.UpdateSettings(req.AdminEmail, req.ReminderFreqMinutes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}
