package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupItemRouter(api fiber.Router, server *cmd.Server) {
	itemHandler := server.ItemHandler
	maintenanceHandler := server.MaintenanceHandler

	// Fixed paths before the :id wildcard.
	api.Get("/items/export", maintenanceHandler.ExportItems)
	api.Post("/items/import", middleware.RequireAdmin(), maintenanceHandler.ImportItems)

	api.Get("/items", itemHandler.ListItems)
	api.Post("/items", middleware.RequireUser(), itemHandler.CreateItem)
	api.Get("/items/:id", itemHandler.GetItemByID)
	api.Patch("/items/:id", middleware.RequireUser(), itemHandler.UpdateItem)
	api.Delete("/items/:id", middleware.RequireAdmin(), itemHandler.DeleteItem)
	api.Post("/items/:id/restore", middleware.RequireAdmin(), itemHandler.RestoreItem)
	api.Get("/items/:id/movements", itemHandler.GetTimeline)
}
