// common.go
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
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/types"
)

// parseLimit reads the limit query parameter; def is used when the
// parameter is absent or not a number.
func parseLimit(c *fiber.Ctx, def int) int {
	return c.QueryInt("limit", def)
}

// parseBody decodes the request body into a record. A missing, unparsable
// or empty body is an input-validation error.
func parseBody(c *fiber.Ctx) (models.Record, error) {
	body := models.Record{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || len(body) == 0 {
		return nil, types.InvalidInput("Request body must be valid JSON")
	}
	return body, nil
}

// parseBodyLenient decodes the request body into a record, treating a
// missing or unparsable body as an empty update.
func parseBodyLenient(c *fiber.Ctx) models.Record {
	body := models.Record{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return models.Record{}
	}
	return body
}
