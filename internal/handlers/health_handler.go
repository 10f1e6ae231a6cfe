package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "detail": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
