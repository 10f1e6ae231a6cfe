package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupSystemRouter(api fiber.Router, server *cmd.Server) {
	systemHandler := server.SystemHandler
	api.Get("/systems", systemHandler.ListSystems)
	api.Post("/systems", middleware.RequireUser(), systemHandler.CreateSystem)
	api.Get("/systems/:id", systemHandler.GetSystemByID)
	api.Put("/systems/:id", middleware.RequireUser(), systemHandler.UpdateSystem)
	api.Delete("/systems/:id", middleware.RequireAdmin(), systemHandler.DeleteSystem)
	api.Post("/systems/:id/restore", middleware.RequireAdmin(), systemHandler.RestoreSystem)
}
