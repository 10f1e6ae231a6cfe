package cmd

import (
	"Shelved/internal/handlers"
	"Shelved/internal/services"
)

type Server struct {
	ItemService        services.ItemService
	ItemHandler        *handlers.ItemHandler
	MovementService    services.MovementService
	MovementHandler    *handlers.MovementHandler
	SystemHandler      *handlers.SystemHandler
	ShelfHandler       *handlers.ShelfHandler
	UserHandler        *handlers.UserHandler
	SessionService     services.SessionService
	SessionHandler     *handlers.SessionHandler
	SettingsHandler    *handlers.SettingsHandler
	StatsHandler       *handlers.StatsHandler
	MaintenanceHandler *handlers.MaintenanceHandler
	HealthHandler      *handlers.HealthHandler
	LogService         services.LogService
	Notifier           *services.Notifier
}

func NewServer(
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	movementService services.MovementService,
	movementHandler *handlers.MovementHandler,
	systemHandler *handlers.SystemHandler,
	shelfHandler *handlers.ShelfHandler,
	userHandler *handlers.UserHandler,
	sessionService services.SessionService,
	sessionHandler *handlers.SessionHandler,
	settingsHandler *handlers.SettingsHandler,
	statsHandler *handlers.StatsHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	healthHandler *handlers.HealthHandler,
	logService services.LogService,
	notifier *services.Notifier,
) *Server {
	return &Server{
		ItemService:        itemService,
		ItemHandler:        itemHandler,
		MovementService:    movementService,
		MovementHandler:    movementHandler,
		SystemHandler:      systemHandler,
		ShelfHandler:       shelfHandler,
		UserHandler:        userHandler,
		SessionService:     sessionService,
		SessionHandler:     sessionHandler,
		SettingsHandler:    settingsHandler,
		StatsHandler:       statsHandler,
		MaintenanceHandler: maintenanceHandler,
		HealthHandler:      healthHandler,
		LogService:         logService,
		Notifier:           notifier,
	}
}
