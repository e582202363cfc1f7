package services

import (
	"github.com/localnerve/travel-home-api/internal/models"
)

// FilterReviews returns reviews, optionally restricted to an exact spotId
// match, truncated to limit. Both the flat /reviews query and the nested
// per-spot route go through here so they cannot drift apart.
func FilterReviews(reviews []models.Record, spotID string, limit int) []models.Record {
	result := reviews
	if spotID != "" {
		result = []models.Record{}
		for _, review := range reviews {
			if review.String("spotId") == spotID {
				result = append(result, review)
			}
		}
	}
	return truncate(result, limit)
}
