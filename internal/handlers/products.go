package handlers

import (
	"github.com/commercekit/ecommerce-api/internal/services"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProductHandler handles product routes
type ProductHandler struct {
	DB *gorm.DB
}

// ListProducts handles GET /products
// @Summary List products
// @Description Get all products
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := services.ListProducts(h.DB)
	if err != nil {
		return sendError(c, err, "listProducts")
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id
// @Summary Get product
// @Description Get a product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	product, err := services.GetProduct(h.DB, id)
	if err != nil {
		return sendError(c, err, "getProduct")
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

// CreateProduct handles POST /products
// @Summary Create product
// @Description Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param body body services.ProductInput true "Product to create"
// @Success 201 {object} models.Product
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON body", fiber.StatusBadRequest, "validation")
	}
	if err := checkInput(input); err != nil {
		return sendError(c, err, "createProduct")
	}

	product, err := services.CreateProduct(h.DB, input)
	if err != nil {
		return sendError(c, err, "createProduct")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /products/:id
// @Summary Update product
// @Description Partially update a product; only supplied fields change
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body services.ProductUpdateInput true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	var input services.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON body", fiber.StatusBadRequest, "validation")
	}
	if err := checkInput(input); err != nil {
		return sendError(c, err, "updateProduct")
	}

	product, err := services.UpdateProduct(h.DB, id, input)
	if err != nil {
		return sendError(c, err, "updateProduct")
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

// DeleteProduct handles DELETE /products/:id
// @Summary Delete product
// @Description Delete a product; its order associations are removed
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	if err := services.DeleteProduct(h.DB, id); err != nil {
		return sendError(c, err, "deleteProduct")
	}

	return utils.MessageResponse(c, "Product deleted successfully")
}
