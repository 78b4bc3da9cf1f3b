// @title Education Resources API
// @version 1.0
// @description Backend service for managing education resources, tracking usage and serving the public resource catalog.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"edu_resources_backend/internal/app"
	"edu_resources_backend/internal/config"
	"edu_resources_backend/pkg/configwatcher"
	"edu_resources_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	if cfg.Server.Mode == "debug" {
		go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
			log.Println("Config file reloaded")
			application.Config = newCfg
		})
	}

	application.Run()
}
