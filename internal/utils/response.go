package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/types"
)

// Every response is an envelope with a success flag: domain payload under
// "data" (lists also carry "count") on success, a short "error" label plus
// a human "message" on failure.

// DataResponse sends a 200 success envelope with a single payload.
func DataResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ListResponse sends a success envelope with a collection payload and its
// count, plus any per-endpoint extras (e.g. "query", "spotId").
func ListResponse(c *fiber.Ctx, data interface{}, count int, extras fiber.Map) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
		"count":   count,
	}
	for k, v := range extras {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// CreatedResponse sends a 201 success envelope with a payload and message.
func CreatedResponse(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// UpdatedResponse sends a 200 success envelope with a payload and message.
func UpdatedResponse(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// MessageResponse sends a success envelope carrying only a message.
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// ErrorResponse sends a failure envelope with the given status.
func ErrorResponse(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   label,
		"message": message,
	})
}

// FromError converts a service error into a failure envelope: APIErrors
// keep their status and label, anything else reports as a 500.
func FromError(c *fiber.Ctx, err error) error {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return ErrorResponse(c, apiErr.Status, apiErr.Label, apiErr.Message)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", err.Error())
}

// ErrorEnvelope defines the schema for error responses
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DataEnvelope defines the schema for single-payload success responses
type DataEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListEnvelope defines the schema for collection success responses
type ListEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}
