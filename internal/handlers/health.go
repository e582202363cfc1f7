package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles the liveness route
type HealthHandler struct{}

// GetHealth handles GET /api/health
// @Summary Health check
// @Description Liveness probe for the API
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "OK",
		"message": "Travel Home API is running",
	})
}
