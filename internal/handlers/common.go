package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/commercekit/ecommerce-api/internal/types"
	"github.com/commercekit/ecommerce-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate is shared by all handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// parseIDParam parses a numeric path parameter. A non-numeric id can never
// match a row, so callers translate the error into their resource's 404.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// checkInput runs struct validation and flattens the field errors into a
// single message, e.g. "name is required; email must be a valid email".
func checkInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return types.Validation(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case "email":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be a valid email")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}

	return types.Validation(strings.Join(msgs, "; "))
}

// sendError maps a service error onto the HTTP response: typed API errors
// keep their status, anything else is a store failure (500).
func sendError(c *fiber.Ctx, err error, errorType string) error {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == fiber.StatusNotFound {
			return utils.NotFoundResponse(c, apiErr.Message)
		}
		return utils.ErrorResponse(c, apiErr.Message, apiErr.Code, apiErr.Type)
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
