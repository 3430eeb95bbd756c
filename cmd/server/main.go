package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/tastebook/backend/internal/router"
	"github.com/tastebook/backend/pkg/config"
	"github.com/tastebook/backend/pkg/metrics"
	"github.com/tastebook/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg.JWTSecret)

	// Validator
	e.Validator = validators.NewValidator()

	// Metrics
	go metrics.Serve(cfg.MetricsPort)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
