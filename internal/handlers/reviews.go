package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"
)

// ReviewHandler handles review routes
type ReviewHandler struct {
	Store *store.Store
}

// GetReviews handles GET /api/reviews
// @Summary List reviews
// @Description List reviews with optional spotId and limit filters
// @Tags Reviews
// @Produce json
// @Param spotId query string false "Only reviews for this spot"
// @Param limit query int false "Maximum number of reviews"
// @Success 200 {object} utils.ListEnvelope
// @Router /reviews [get]
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	db := h.Store.Load()
	reviews := services.FilterReviews(db.Reviews, c.Query("spotId"), parseLimit(c, 0))
	return utils.ListResponse(c, reviews, len(reviews), nil)
}

// GetSpotReviews handles GET /api/spots/:id/reviews
// @Summary List reviews for a spot
// @Tags Reviews
// @Produce json
// @Param id path string true "Spot id"
// @Param limit query int false "Maximum number of reviews"
// @Success 200 {object} utils.ListEnvelope
// @Router /spots/{id}/reviews [get]
func (h *ReviewHandler) GetSpotReviews(c *fiber.Ctx) error {
	spotID := c.Params("id")
	db := h.Store.Load()

	reviews := services.FilterReviews(db.Reviews, spotID, parseLimit(c, 0))
	return utils.ListResponse(c, reviews, len(reviews), fiber.Map{"spotId": spotID})
}
