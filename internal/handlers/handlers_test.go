package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/commercekit/ecommerce-api/internal/handlers"
	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// setupTestApp wires the full route set against an in-memory SQLite database
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()

	systemHandler := &handlers.SystemHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	orderHandler := &handlers.OrderHandler{DB: db}

	app.Get("/", systemHandler.Home)
	app.Get("/init-db", systemHandler.InitDB)

	app.Get("/users", userHandler.ListUsers)
	app.Get("/users/:id", userHandler.GetUser)
	app.Post("/users", userHandler.CreateUser)
	app.Put("/users/:id", userHandler.UpdateUser)
	app.Delete("/users/:id", userHandler.DeleteUser)

	app.Get("/products", productHandler.ListProducts)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Post("/products", productHandler.CreateProduct)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)

	app.Post("/orders", orderHandler.CreateOrder)
	app.Put("/orders/:order_id/add_product/:product_id", orderHandler.AddProduct)
	app.Delete("/orders/:order_id/remove_product/:product_id", orderHandler.RemoveProduct)
	app.Get("/orders/user/:user_id", orderHandler.ListUserOrders)
	app.Get("/orders/:order_id/products", orderHandler.ListProducts)

	return app, db
}

// doRequest executes a JSON request against the test app
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// decodeBody decodes a JSON response body into a generic map
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

func TestHome(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["message"] != "E-Commerce API" {
		t.Errorf("Expected API description, got %v", result["message"])
	}
	if result["endpoints"] == nil {
		t.Error("Expected endpoints map in response")
	}
}

func TestInitDB(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/init-db", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	if result["message"] != "Database tables created successfully" {
		t.Errorf("Unexpected message: %v", result["message"])
	}
}
