package services

import (
	"fmt"
	"log"

	"github.com/commercekit/ecommerce-api/internal/config"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	API          string            `json:"api,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck verifies database connectivity and, when HEALTH_URL is set,
// that the running API server is reachable.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check API server connectivity
	if cfg.HealthURL != "" {
		if err := utils.PingAPI(cfg.HealthURL); err != nil {
			result.Status = "unhealthy"
			result.API = "unreachable"
			result.Details["api_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("API ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; API ping failed: %v", err)
			}
			log.Printf("Health check failed - api ping: %v", err)
		} else {
			result.API = "ok"
			result.Details["api_url"] = cfg.HealthURL
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
