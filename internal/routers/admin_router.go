package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupAdminRouter(api fiber.Router, server *cmd.Server) {
	settingsHandler := server.SettingsHandler
	notifier := server.Notifier

	api.Get("/settings", middleware.RequireAdmin(), settingsHandler.GetSettings)
	api.Put("/settings", middleware.RequireAdmin(), settingsHandler.UpdateSettings)

	api.Post("/notifier/run", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		if err := notifier.ForceRun(); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": err.Error()})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{})
	})
}
