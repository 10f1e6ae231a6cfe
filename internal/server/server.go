package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"Shelved/cmd"
	"Shelved/internal/config"
	"Shelved/internal/routers"
)

// NewApp assembles the fiber application. Listening is the caller's job
// so tests can drive the app through app.Test.
func NewApp(server *cmd.Server, cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Shelved",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)
	return app
}
