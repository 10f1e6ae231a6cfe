package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api", middleware.LoadSession(server.SessionService))

	api.Get("/health", server.HealthHandler.Health)
	api.Get("/stats", server.StatsHandler.Dashboard)
	api.Get("/stats/summary", server.StatsHandler.Summary)

	SetupItemRouter(api, server)
	SetupMovementRouter(api, server)
	SetupSystemRouter(api, server)
	SetupShelfRouter(api, server)
	SetupUserRouter(api, server)
	SetupAdminRouter(api, server)
}
