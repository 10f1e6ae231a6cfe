package routers

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/cmd"
	"Shelved/internal/middleware"
)

func SetupUserRouter(api fiber.Router, server *cmd.Server) {
	userHandler := server.UserHandler
	sessionHandler := server.SessionHandler

	api.Get("/users", middleware.RequireUser(), userHandler.ListUsers)
	api.Post("/users", middleware.RequireAdmin(), userHandler.CreateUser)
	api.Put("/users/:id", middleware.RequireAdmin(), userHandler.UpdateUser)
	api.Delete("/users/:id", middleware.RequireAdmin(), userHandler.DeleteUser)
	api.Post("/users/:id/reset_password", middleware.RequireAdmin(), userHandler.ResetPassword)

	api.Post("/session/login", sessionHandler.Login)
	api.Get("/session/me", sessionHandler.Me)
	api.Post("/session/logout", sessionHandler.Logout)
}
