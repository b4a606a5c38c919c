package handlers

import (
	"github.com/commercekit/ecommerce-api/internal/services"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrderHandler handles order routes
type OrderHandler struct {
	DB *gorm.DB
}

// CreateOrder handles POST /orders
// @Summary Create order
// @Description Create a new order for an existing user; order_date defaults to now
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body services.OrderInput true "Order to create"
// @Success 201 {object} models.Order
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var input services.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON body", fiber.StatusBadRequest, "validation")
	}
	if err := checkInput(input); err != nil {
		return sendError(c, err, "createOrder")
	}

	order, err := services.CreateOrder(h.DB, input)
	if err != nil {
		return sendError(c, err, "createOrder")
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// AddProduct handles PUT /orders/:order_id/add_product/:product_id
// @Summary Add product to order
// @Description Associate a product with an order; duplicates are rejected
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /orders/{order_id}/add_product/{product_id} [put]
func (h *OrderHandler) AddProduct(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "order_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Order not found")
	}
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	order, err := services.AddProductToOrder(h.DB, orderID, productID)
	if err != nil {
		return sendError(c, err, "addProductToOrder")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product added to order successfully",
		"order":   order,
	})
}

// RemoveProduct handles DELETE /orders/:order_id/remove_product/:product_id
// @Summary Remove product from order
// @Description Remove the association between an order and a product
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /orders/{order_id}/remove_product/{product_id} [delete]
func (h *OrderHandler) RemoveProduct(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "order_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Order not found")
	}
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	order, err := services.RemoveProductFromOrder(h.DB, orderID, productID)
	if err != nil {
		return sendError(c, err, "removeProductFromOrder")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product removed from order successfully",
		"order":   order,
	})
}

// ListUserOrders handles GET /orders/user/:user_id
// @Summary List a user's orders
// @Description Get all orders owned by a user
// @Tags Orders
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Order
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /orders/user/{user_id} [get]
func (h *OrderHandler) ListUserOrders(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	orders, err := services.ListUserOrders(h.DB, userID)
	if err != nil {
		return sendError(c, err, "listUserOrders")
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

// ListProducts handles GET /orders/:order_id/products
// @Summary List an order's products
// @Description Get all products associated with an order
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.Product
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /orders/{order_id}/products [get]
func (h *OrderHandler) ListProducts(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "order_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Order not found")
	}

	products, err := services.ListOrderProducts(h.DB, orderID)
	if err != nil {
		return sendError(c, err, "listOrderProducts")
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
