package main

import (
	"flag"
	"log"

	"github.com/Shandeepsugumar/quize-game-platform/internal/app"
	"github.com/Shandeepsugumar/quize-game-platform/internal/config"
)

// @title Quiz Game Platform API
// @version 1.0
// @description Multiplayer trivia platform with quiz authoring, game rooms, time-bonus scoring and a global leaderboard.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	forceMigrate := flag.Bool("migrate", false, "run database migrations before starting")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = *forceMigrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)

	if cfg.MigrateOnly {
		log.Println("Migrations complete, exiting")
		return
	}

	application.Run()
}
