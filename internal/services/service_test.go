package services_test

import (
	"testing"

	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing.
// Connections are pinned to one so every query sees the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// createTestUser inserts a user directly via GORM
func createTestUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	user := models.User{Name: name, Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// createTestProduct inserts a product directly via GORM
func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	product := models.Product{ProductName: name, Price: price}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// associationCount counts rows in order_product for an order/product pair
func associationCount(t *testing.T, db *gorm.DB, orderID, productID uint64) int64 {
	var count int64
	err := db.Table("order_product").
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("Failed to count associations: %v", err)
	}
	return count
}
