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

package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/types"
)

// utcTimestamp returns the current time as an ISO-8601 UTC string with the
// trailing Z that API consumers expect.
func utcTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateItinerary appends a new itinerary record to the document. A missing
// id is generated; createdAt and updatedAt are set to the same instant.
// A duplicate id is a conflict and leaves the document untouched.
func CreateItinerary(db *models.Database, body models.Record) (models.Record, error) {
	itinerary := body.Clone()

	if itinerary.String("id") == "" {
		itinerary["id"] = uuid.NewString()
	}

	now := utcTimestamp()
	itinerary["createdAt"] = now
	itinerary["updatedAt"] = now

	id := itinerary.String("id")
	for _, existing := range db.Itineraries {
		if existing.String("id") == id {
			return nil, types.Conflict("Itinerary with ID %s already exists", id)
		}
	}

	db.Itineraries = append(db.Itineraries, itinerary)
	return itinerary, nil
}

// FindItinerary returns the itinerary with the given id.
func FindItinerary(itineraries []models.Record, id string) (models.Record, bool) {
	for _, itinerary := range itineraries {
		if itinerary.String("id") == id {
			return itinerary, true
		}
	}
	return nil, false
}

// UpdateItinerary shallow-merges updates into the itinerary with the given
// id: every field present in the payload overwrites the stored one, fields
// absent from the payload survive. The id is pinned back to the path value
// so a payload cannot re-key the record, and updatedAt is refreshed.
func UpdateItinerary(db *models.Database, id string, updates models.Record) (models.Record, error) {
	for i, existing := range db.Itineraries {
		if existing.String("id") != id {
			continue
		}

		merged := existing.Clone()
		for k, v := range updates {
			merged[k] = v
		}
		merged["id"] = id
		merged["updatedAt"] = utcTimestamp()

		db.Itineraries[i] = merged
		return merged, nil
	}
	return nil, types.NotFound("Itinerary not found", "No itinerary found with ID: %s", id)
}

// DeleteItinerary removes the itinerary with the given id. Not-found is
// detected by the collection length staying the same.
func DeleteItinerary(db *models.Database, id string) error {
	kept := make([]models.Record, 0, len(db.Itineraries))
	for _, itinerary := range db.Itineraries {
		if itinerary.String("id") != id {
			kept = append(kept, itinerary)
		}
	}

	if len(kept) == len(db.Itineraries) {
		return types.NotFound("Itinerary not found", "No itinerary found with ID: %s", id)
	}

	db.Itineraries = kept
	return nil
}
