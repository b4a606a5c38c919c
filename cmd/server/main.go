package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/commercekit/ecommerce-api/internal/config"
	"github.com/commercekit/ecommerce-api/internal/database"
	"github.com/commercekit/ecommerce-api/internal/handlers"
	"github.com/commercekit/ecommerce-api/internal/middleware"

	_ "github.com/commercekit/ecommerce-api/docs/api" // Swagger docs
)

// @title E-Commerce API
// @version 1.0.0
// @description CRUD service for users, products, and orders over a relational store

// @contact.name API Support
// @contact.url https://github.com/commercekit/ecommerce-api

// @license.name MIT

// @host localhost:3000
// @BasePath /
// @schemes http

func main() {
	// Load .env if present, then configuration from the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

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

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("ecommerce_api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	systemHandler := &handlers.SystemHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	orderHandler := &handlers.OrderHandler{DB: db}

	// System routes
	app.Get("/", systemHandler.Home)
	app.Get("/init-db", systemHandler.InitDB)

	// User routes
	app.Get("/users", userHandler.ListUsers)
	app.Get("/users/:id", userHandler.GetUser)
	app.Post("/users", userHandler.CreateUser)
	app.Put("/users/:id", userHandler.UpdateUser)
	app.Delete("/users/:id", userHandler.DeleteUser)

	// Product routes
	app.Get("/products", productHandler.ListProducts)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Post("/products", productHandler.CreateProduct)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)

	// Order routes
	app.Post("/orders", orderHandler.CreateOrder)
	app.Put("/orders/:order_id/add_product/:product_id", orderHandler.AddProduct)
	app.Delete("/orders/:order_id/remove_product/:product_id", orderHandler.RemoveProduct)
	app.Get("/orders/user/:user_id", orderHandler.ListUserOrders)
	app.Get("/orders/:order_id/products", orderHandler.ListProducts)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
