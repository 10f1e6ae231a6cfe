package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupMovementRouter(api fiber.Router, server *cmd.Server) {
	movementHandler := server.MovementHandler
	maintenanceHandler := server.MaintenanceHandler

	api.Get("/movements/export", middleware.RequireUser(), maintenanceHandler.ExportMovements)
	api.Get("/movements", movementHandler.ListMovements)
	api.Post("/movements/receive", middleware.RequireUser(), movementHandler.Receive)
	api.Post("/movements/issue", middleware.RequireUser(), movementHandler.Issue)
	api.Post("/movements/return", middleware.RequireUser(), movementHandler.Return)
	api.Post("/movements/adjust", middleware.RequireAdmin(), movementHandler.Adjust)
	api.Post("/movements/transfer", middleware.RequireUser(), movementHandler.Transfer)

	api.Get("/status/current_out_by_holder", movementHandler.CurrentOutByHolder)
	api.Get("/status/overdue", movementHandler.Overdue)
}
