package main

import (
	"fmt"
	"log"

	"Shelved/internal/config"
	"Shelved/internal/server"
)

func main() {
	srv, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	srv.Notifier.Start()
	defer srv.Notifier.Stop()

	cfg, err := config.LoadConfiguration("shelved.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := server.NewApp(srv, cfg)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
