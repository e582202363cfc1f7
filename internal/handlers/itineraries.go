// itineraries.go
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

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"
)

// ItineraryHandler handles itinerary routes
type ItineraryHandler struct {
	Store *store.Store
}

// GetItineraries handles GET /api/itineraries
// @Summary List itineraries
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.ListEnvelope
// @Router /itineraries [get]
func (h *ItineraryHandler) GetItineraries(c *fiber.Ctx) error {
	db := h.Store.Load()
	return utils.ListResponse(c, db.Itineraries, len(db.Itineraries), nil)
}

// CreateItinerary handles POST /api/itineraries
// @Summary Create an itinerary
// @Description Create an itinerary from an arbitrary JSON object; id is generated when absent
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param body body object true "Itinerary fields"
// @Success 201 {object} utils.DataEnvelope
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 409 {object} utils.ErrorEnvelope
// @Router /itineraries [post]
func (h *ItineraryHandler) CreateItinerary(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.FromError(c, err)
	}

	var created models.Record
	err = h.Store.Mutate(func(db *models.Database) error {
		created, err = services.CreateItinerary(db, body)
		return err
	})
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.CreatedResponse(c, created, "Itinerary created successfully")
}

// GetItinerary handles GET /api/itineraries/:id
// @Summary Get an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.DataEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /itineraries/{id} [get]
func (h *ItineraryHandler) GetItinerary(c *fiber.Ctx) error {
	id := c.Params("id")
	db := h.Store.Load()

	itinerary, ok := services.FindItinerary(db.Itineraries, id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Itinerary not found",
			fmt.Sprintf("No itinerary found with ID: %s", id))
	}

	return utils.DataResponse(c, itinerary)
}

// UpdateItinerary handles PUT /api/itineraries/:id
// @Summary Update an itinerary
// @Description Shallow-merge the payload into the stored itinerary; the path id always wins
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary id"
// @Param body body object true "Fields to overwrite"
// @Success 200 {object} utils.DataEnvelope
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /itineraries/{id} [put]
func (h *ItineraryHandler) UpdateItinerary(c *fiber.Ctx) error {
	id := c.Params("id")

	body, err := parseBody(c)
	if err != nil {
		return utils.FromError(c, err)
	}

	var updated models.Record
	err = h.Store.Mutate(func(db *models.Database) error {
		updated, err = services.UpdateItinerary(db, id, body)
		return err
	})
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.UpdatedResponse(c, updated, "Itinerary updated successfully")
}

// DeleteItinerary handles DELETE /api/itineraries/:id
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /itineraries/{id} [delete]
func (h *ItineraryHandler) DeleteItinerary(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.Store.Mutate(func(db *models.Database) error {
		return services.DeleteItinerary(db, id)
	})
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.MessageResponse(c, fmt.Sprintf("Itinerary %s deleted successfully", id))
}
