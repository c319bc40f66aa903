package main

import (
	"log"

	"scholarship_portal_backend/internal/app"
	"scholarship_portal_backend/internal/config"
	"scholarship_portal_backend/pkg/configwatcher"
)

// @title Plateau State Scholarship Portal API
// @version 1.0
// @description Back office and public API for the Plateau State scholarship programme.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
