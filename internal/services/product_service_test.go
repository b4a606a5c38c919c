package services_test

import (
	"errors"
	"testing"

	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/commercekit/ecommerce-api/internal/services"
	"github.com/commercekit/ecommerce-api/internal/types"
)

func TestCreateAndGetProduct(t *testing.T) {
	db := setupTestDB(t)

	price := 9.99
	created, err := services.CreateProduct(db, services.ProductInput{ProductName: "Widget", Price: &price})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	fetched, err := services.GetProduct(db, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.ProductName != "Widget" {
		t.Errorf("Expected 'Widget', got %q", fetched.ProductName)
	}
	if fetched.Price != 9.99 {
		t.Errorf("Expected price 9.99, got %v", fetched.Price)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "Widget", 9.99)

	// Only price supplied: name must be untouched
	price := 19.99
	updated, err := services.UpdateProduct(db, product.ID, services.ProductUpdateInput{Price: &price})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ProductName != "Widget" {
		t.Errorf("Name changed unexpectedly: %q", updated.ProductName)
	}
	if updated.Price != 19.99 {
		t.Errorf("Expected price 19.99, got %v", updated.Price)
	}
}

func TestDeleteProductClearsAssociations(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Ana", "ana@x.com")
	product := createTestProduct(t, db, "Widget", 9.99)

	order, err := services.CreateOrder(db, services.OrderInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	if _, err := services.AddProductToOrder(db, order.ID, product.ID); err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	if err := services.DeleteProduct(db, product.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if n := associationCount(t, db, order.ID, product.ID); n != 0 {
		t.Errorf("Expected association rows to be cleared, found %d", n)
	}

	// The order itself survives a product delete
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 1 {
		t.Errorf("Expected order to survive, found %d", orderCount)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := services.DeleteProduct(db, 7)

	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 404 {
		t.Fatalf("Expected 404 APIError, got %v", err)
	}
	if apiErr.Message != "Product not found" {
		t.Errorf("Expected 'Product not found', got %q", apiErr.Message)
	}
}
