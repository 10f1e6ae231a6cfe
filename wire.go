//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"Shelved/cmd"
	"Shelved/database"
	"Shelved/internal/config"
	"Shelved/internal/handlers"
	"Shelved/internal/repository"
	"Shelved/internal/services"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("shelved.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		Provider,
		repository.NewItemRepository,
		repository.NewMovementRepository,
		repository.NewSystemRepository,
		repository.NewShelfRepository,
		repository.NewUserRepository,
		repository.NewSettingsRepository,
		services.NewLogService,
		services.NewItemService,
		services.NewMovementService,
		services.NewSystemService,
		services.NewShelfService,
		services.NewUserService,
		services.NewSessionService,
		services.NewSettingsService,
		services.NewStatsService,
		services.NewExportService,
		services.NewImportService,
		services.NewMailer,
		services.NewNotifier,
		handlers.NewItemHandler,
		handlers.NewMovementHandler,
		handlers.NewSystemHandler,
		handlers.NewShelfHandler,
		handlers.NewUserHandler,
		handlers.NewSessionHandler,
		handlers.NewSettingsHandler,
		handlers.NewStatsHandler,
		handlers.NewMaintenanceHandler,
		handlers.NewHealthHandler,
	)
	return nil, nil
}
