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

package services

import (
	"strings"

	"github.com/localnerve/travel-home-api/internal/models"
)

// Tag markers doubling as boolean flags on a spot.
const (
	TagPopular  = "popular"
	TagFeatured = "featured"
)

// SpotQuery carries the optional spot list filters. Popular and Featured
// are tri-state: empty means no filter, "true" keeps spots carrying the
// tag, any other value keeps spots without it. Limit <= 0 means no limit.
type SpotQuery struct {
	Category string
	Popular  string
	Featured string
	Limit    int
}

// FilterSpots applies category, popular and featured filters in that
// order, then truncates to the limit. Collection order is preserved; no
// sorting happens anywhere in the query path.
func FilterSpots(spots []models.Record, q SpotQuery) []models.Record {
	result := spots

	if q.Category != "" {
		result = filterByTag(result, q.Category, true)
	}
	if q.Popular != "" {
		result = filterByTag(result, TagPopular, strings.EqualFold(q.Popular, "true"))
	}
	if q.Featured != "" {
		result = filterByTag(result, TagFeatured, strings.EqualFold(q.Featured, "true"))
	}

	return truncate(result, q.Limit)
}

// FindSpot scans for the first spot whose id or slug equals key. The two
// fields are checked per record in collection order, so if an id of one
// spot ever collided with the slug of another, the earlier record wins.
func FindSpot(spots []models.Record, key string) (models.Record, bool) {
	for _, spot := range spots {
		if spot.String("id") == key || spot.String("slug") == key {
			return spot, true
		}
	}
	return nil, false
}

// TaggedSpots returns spots carrying the given tag, up to limit.
func TaggedSpots(spots []models.Record, tag string, limit int) []models.Record {
	return truncate(filterByTag(spots, tag, true), limit)
}

// FindCategory scans for the category with the given id.
func FindCategory(categories []models.Record, id string) (models.Record, bool) {
	for _, category := range categories {
		if category.String("id") == id {
			return category, true
		}
	}
	return nil, false
}

// SearchSpots matches the lowercased query as a substring of a spot's
// title, location, description, or space-joined tag list, optionally
// restricted to a category tag afterwards. Plain substring matching, no
// tokenizing or ranking; callers validate that query is non-empty.
func SearchSpots(spots []models.Record, query, category string, limit int) []models.Record {
	needle := strings.ToLower(query)

	results := []models.Record{}
	for _, spot := range spots {
		haystacks := []string{
			strings.ToLower(spot.String("title")),
			strings.ToLower(spot.String("location")),
			strings.ToLower(spot.String("description")),
			strings.ToLower(strings.Join(spot.Tags(), " ")),
		}
		for _, h := range haystacks {
			if strings.Contains(h, needle) {
				results = append(results, spot)
				break
			}
		}
	}

	if category != "" {
		results = filterByTag(results, category, true)
	}

	return truncate(results, limit)
}

// filterByTag keeps spots that carry (want=true) or lack (want=false) tag.
func filterByTag(spots []models.Record, tag string, want bool) []models.Record {
	result := []models.Record{}
	for _, spot := range spots {
		if spot.HasTag(tag) == want {
			result = append(result, spot)
		}
	}
	return result
}

// truncate keeps the first limit records when limit is positive.
func truncate(records []models.Record, limit int) []models.Record {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
