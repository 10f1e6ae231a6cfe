package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupShelfRouter(api fiber.Router, server *cmd.Server) {
	shelfHandler := server.ShelfHandler
	api.Get("/shelves", shelfHandler.ListShelves)
	api.Post("/shelves", middleware.RequireUser(), shelfHandler.CreateShelf)
	api.Get("/shelves/:id", shelfHandler.GetShelfByID)
	api.Put("/shelves/:id", middleware.RequireUser(), shelfHandler.UpdateShelf)
	api.Delete("/shelves/:id", middleware.RequireAdmin(), shelfHandler.DeleteShelf)
	api.Post("/shelves/:id/restore", middleware.RequireAdmin(), shelfHandler.RestoreShelf)
}
