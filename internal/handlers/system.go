package handlers

import (
	"github.com/commercekit/ecommerce-api/internal/database"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SystemHandler handles the home and schema routes
type SystemHandler struct {
	DB *gorm.DB
}

// Home handles GET /
// @Summary API description
// @Description List the available endpoints
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Home(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "E-Commerce API",
		"endpoints": fiber.Map{
			"users": fiber.Map{
				"GET /users":        "Get all users",
				"GET /users/:id":    "Get user by ID",
				"POST /users":       "Create new user",
				"PUT /users/:id":    "Update user",
				"DELETE /users/:id": "Delete user",
			},
			"products": fiber.Map{
				"GET /products":        "Get all products",
				"GET /products/:id":    "Get product by ID",
				"POST /products":       "Create new product",
				"PUT /products/:id":    "Update product",
				"DELETE /products/:id": "Delete product",
			},
			"orders": fiber.Map{
				"POST /orders":                                        "Create new order",
				"PUT /orders/:order_id/add_product/:product_id":       "Add product to order",
				"DELETE /orders/:order_id/remove_product/:product_id": "Remove product from order",
				"GET /orders/user/:user_id":                           "Get all orders for a user",
				"GET /orders/:order_id/products":                      "Get all products for an order",
			},
		},
	})
}

// InitDB handles GET /init-db
// @Summary Create schema
// @Description Create the database tables if they do not exist
// @Tags System
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /init-db [get]
func (h *SystemHandler) InitDB(c *fiber.Ctx) error {
	if err := database.AutoMigrate(h.DB); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "initDB")
	}

	return utils.MessageResponse(c, "Database tables created successfully")
}
