package main

import (
	"log"

	"arton360/internal/api"
	"arton360/internal/config"
	"arton360/internal/database"
	"arton360/internal/events"
	"arton360/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}

	// A fresh install needs color/size terms before it can variate
	if err := db.SeedDefaultTerms(cfg.ColorTaxonomy, cfg.SizeTaxonomy); err != nil {
		logger.Fatal("Failed to seed attribute terms: %v", err)
	}

	// Product event stream
	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	// Initialize API server
	server := api.New(cfg, logger, db, publisher)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
