package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"arton360/internal/config"
	"arton360/internal/database"
	"arton360/internal/logger"
	"arton360/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.KafkaBrokers == "" {
		log.Fatal("KAFKA_BROKERS must be set for the worker")
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}

	w := worker.New(cfg, logger, db)

	go w.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	w.Stop()
}
