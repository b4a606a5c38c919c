package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/commercekit/ecommerce-api/internal/config"
	"github.com/commercekit/ecommerce-api/internal/database"
	"github.com/commercekit/ecommerce-api/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
}
