// profile.go
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
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"
)

// ProfileHandler handles the single user profile and its avatar
type ProfileHandler struct {
	Store      *store.Store
	UploadsDir string
}

// GetProfile handles GET /api/profile
// @Summary Get the profile
// @Description Get the single user profile, materializing defaults on first read
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.DataEnvelope
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile := h.Store.Load().Profile

	// First read materializes and persists the placeholder identity, so
	// later reads return the stored record untouched.
	if len(profile) == 0 {
		err := h.Store.Mutate(func(db *models.Database) error {
			if len(db.Profile) == 0 {
				db.Profile = services.DefaultProfile()
			}
			profile = db.Profile
			return nil
		})
		if err != nil {
			return utils.FromError(c, err)
		}
	}

	return utils.DataResponse(c, profile)
}

// UpdateProfile handles PUT /api/profile
// @Summary Update the profile
// @Description Merge allow-listed fields into the profile; unknown fields are dropped
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "Profile fields"
// @Success 200 {object} utils.DataEnvelope
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	updates := parseBodyLenient(c)

	var merged models.Record
	err := h.Store.Mutate(func(db *models.Database) error {
		merged = services.MergeProfile(db.Profile, updates)
		db.Profile = merged
		return nil
	})
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.UpdatedResponse(c, merged, "Profile updated successfully")
}

// UploadAvatar handles POST /api/profile/avatar
// @Summary Upload an avatar image
// @Description Store the uploaded file under the public uploads directory and point profile.avatarUrl at it
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} utils.DataEnvelope
// @Failure 400 {object} utils.ErrorEnvelope
// @Router /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bad Request",
			"No file field 'avatar' provided")
	}
	if file.Filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bad Request",
			"Empty filename")
	}

	// Unique time-based name; only the sanitized extension of the client
	// filename is kept.
	ext := sanitizeExt(file.Filename)
	name := fmt.Sprintf("avatar_%d%s", time.Now().UnixNano(), ext)

	if err := c.SaveFile(file, filepath.Join(h.UploadsDir, name)); err != nil {
		return utils.FromError(c, err)
	}

	urlPath := "/uploads/" + name
	err = h.Store.Mutate(func(db *models.Database) error {
		if db.Profile == nil {
			db.Profile = models.Record{}
		}
		db.Profile["avatarUrl"] = urlPath
		return nil
	})
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.UpdatedResponse(c, fiber.Map{"url": urlPath}, "Avatar uploaded successfully")
}

// sanitizeExt extracts a safe file extension, defaulting to .jpg.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || ext == "." {
		return ".jpg"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".jpg"
		}
	}
	return ext
}
