package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/internal/services"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(maxClearanceOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}
