package handlers

import (
	"github.com/commercekit/ecommerce-api/internal/services"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /users
// @Summary List users
// @Description Get all users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return sendError(c, err, "listUsers")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /users/:id
// @Summary Get user
// @Description Get a user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	user, err := services.GetUser(h.DB, id)
	if err != nil {
		return sendError(c, err, "getUser")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser handles POST /users
// @Summary Create user
// @Description Create a new user; email must be unique
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.UserInput true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON body", fiber.StatusBadRequest, "validation")
	}
	if err := checkInput(input); err != nil {
		return sendError(c, err, "createUser")
	}

	user, err := services.CreateUser(h.DB, input)
	if err != nil {
		return sendError(c, err, "createUser")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /users/:id
// @Summary Update user
// @Description Partially update a user; only supplied fields change
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body services.UserUpdateInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	var input services.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON body", fiber.StatusBadRequest, "validation")
	}
	if err := checkInput(input); err != nil {
		return sendError(c, err, "updateUser")
	}

	user, err := services.UpdateUser(h.DB, id, input)
	if err != nil {
		return sendError(c, err, "updateUser")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete user
// @Description Delete a user and all of the user's orders
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	if err := services.DeleteUser(h.DB, id); err != nil {
		return sendError(c, err, "deleteUser")
	}

	return utils.MessageResponse(c, "User deleted successfully")
}
