package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"
)

// CategoryHandler handles category routes
type CategoryHandler struct {
	Store *store.Store
}

// GetCategories handles GET /api/categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.ListEnvelope
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	db := h.Store.Load()
	return utils.ListResponse(c, db.Categories, len(db.Categories), nil)
}

// GetCategory handles GET /api/categories/:id
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} utils.DataEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	db := h.Store.Load()

	category, ok := services.FindCategory(db.Categories, id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found",
			fmt.Sprintf("No category found with ID: %s", id))
	}

	return utils.DataResponse(c, category)
}

// GetCategorySpots handles GET /api/categories/:id/spots
// @Summary List spots in a category
// @Description List spots carrying the category id as a tag
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Param limit query int false "Maximum number of spots"
// @Success 200 {object} utils.ListEnvelope
// @Router /categories/{id}/spots [get]
func (h *CategoryHandler) GetCategorySpots(c *fiber.Ctx) error {
	id := c.Params("id")
	db := h.Store.Load()

	spots := services.TaggedSpots(db.Spots, id, parseLimit(c, 0))
	return utils.ListResponse(c, spots, len(spots), fiber.Map{"category": id})
}
