// spots.go
//
// A scalable, high performance drop-in replacement for the travel-home flask data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of travel-home-api.
// travel-home-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// travel-home-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with travel-home-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"
)

// defaultShortcutLimit caps the popular/featured shortcut lists.
const defaultShortcutLimit = 3

// SpotHandler handles spot routes
type SpotHandler struct {
	Store *store.Store
}

// GetSpots handles GET /api/spots
// @Summary List spots
// @Description List spots with optional category, popular, featured and limit filters
// @Tags Spots
// @Produce json
// @Param category query string false "Tag the spot must carry"
// @Param popular query string false "true keeps popular spots, any other value excludes them"
// @Param featured query string false "true keeps featured spots, any other value excludes them"
// @Param limit query int false "Maximum number of spots"
// @Success 200 {object} utils.ListEnvelope
// @Router /spots [get]
func (h *SpotHandler) GetSpots(c *fiber.Ctx) error {
	db := h.Store.Load()

	spots := services.FilterSpots(db.Spots, services.SpotQuery{
		Category: c.Query("category"),
		Popular:  c.Query("popular"),
		Featured: c.Query("featured"),
		Limit:    parseLimit(c, 0),
	})

	return utils.ListResponse(c, spots, len(spots), nil)
}

// GetSpot handles GET /api/spots/:id
// @Summary Get a spot
// @Description Get a single spot by id or slug
// @Tags Spots
// @Produce json
// @Param id path string true "Spot id or slug"
// @Success 200 {object} utils.DataEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /spots/{id} [get]
func (h *SpotHandler) GetSpot(c *fiber.Ctx) error {
	key := c.Params("id")
	db := h.Store.Load()

	spot, ok := services.FindSpot(db.Spots, key)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Spot not found",
			fmt.Sprintf("No spot found with ID or slug: %s", key))
	}

	return utils.DataResponse(c, spot)
}

// GetPopularSpots handles GET /api/spots/popular
// @Summary List popular spots
// @Tags Spots
// @Produce json
// @Param limit query int false "Maximum number of spots (default 3)"
// @Success 200 {object} utils.ListEnvelope
// @Router /spots/popular [get]
func (h *SpotHandler) GetPopularSpots(c *fiber.Ctx) error {
	db := h.Store.Load()
	spots := services.TaggedSpots(db.Spots, services.TagPopular, parseLimit(c, defaultShortcutLimit))
	return utils.ListResponse(c, spots, len(spots), nil)
}

// GetFeaturedSpots handles GET /api/spots/featured
// @Summary List featured spots
// @Tags Spots
// @Produce json
// @Param limit query int false "Maximum number of spots (default 3)"
// @Success 200 {object} utils.ListEnvelope
// @Router /spots/featured [get]
func (h *SpotHandler) GetFeaturedSpots(c *fiber.Ctx) error {
	db := h.Store.Load()
	spots := services.TaggedSpots(db.Spots, services.TagFeatured, parseLimit(c, defaultShortcutLimit))
	return utils.ListResponse(c, spots, len(spots), nil)
}

// Search handles GET /api/search
// @Summary Search spots
// @Description Case-insensitive substring search over title, location, description and tags
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Tag the spot must also carry"
// @Param limit query int false "Maximum number of results (default 10)"
// @Success 200 {object} utils.ListEnvelope
// @Failure 400 {object} utils.ErrorEnvelope
// @Router /search [get]
func (h *SpotHandler) Search(c *fiber.Ctx) error {
	query := strings.ToLower(c.Query("q"))
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing search query",
			"Please provide a search query using the 'q' parameter")
	}

	db := h.Store.Load()
	results := services.SearchSpots(db.Spots, query, c.Query("category"), parseLimit(c, 10))

	return utils.ListResponse(c, results, len(results), fiber.Map{"query": query})
}
