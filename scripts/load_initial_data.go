package main

import (
	"flag"
	"log"
	"time"

	"garage-backend/internal/config"
	"garage-backend/internal/database"
	"garage-backend/internal/seed"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding users*.yaml and stock*.yaml")
	flag.Parse()

	_ = godotenv.Load()

	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := database.InitializeWithRetry(cfg.DatabaseURL, &database.Options{LogLevel: logger.Silent}, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := seed.LoadDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	result, err := seed.Apply(db, data)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("Initial data loaded: %d users, %d stock items created", result.UsersCreated, result.StockCreated)
}
