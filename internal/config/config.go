package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Healthcheck configuration
	HealthURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		HealthURL:         getEnv("HEALTH_URL", ""),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
