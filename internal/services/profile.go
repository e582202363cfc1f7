package services

import (
	"github.com/localnerve/travel-home-api/internal/models"
)

// Defaults back-filled onto a profile that has never been written.
const (
	DefaultProfileName   = "Jowehl"
	DefaultProfileCity   = "Agusan del Norte Province, Philippines"
	DefaultJoinedYear    = 2025
	DefaultAvatarURL     = "/placeholder-user.jpg"
	DefaultContributions = 0
)

// profileAllowList is the full set of profile fields writable through the
// API. Anything else in an update payload is dropped, not rejected.
var profileAllowList = map[string]struct{}{
	"name":          {},
	"city":          {},
	"website":       {},
	"about":         {},
	"avatarUrl":     {},
	"joinedYear":    {},
	"contributions": {},
}

// DefaultProfile returns the placeholder identity materialized on first
// read of a store that has no profile yet.
func DefaultProfile() models.Record {
	return models.Record{
		"name":          DefaultProfileName,
		"city":          DefaultProfileCity,
		"website":       "",
		"about":         "",
		"joinedYear":    DefaultJoinedYear,
		"contributions": DefaultContributions,
		"avatarUrl":     DefaultAvatarURL,
	}
}

// MergeProfile copies allow-listed fields from updates over current, then
// back-fills joinedYear, contributions and avatarUrl if still absent.
// One level deep only; nested objects replace wholesale.
func MergeProfile(current, updates models.Record) models.Record {
	merged := current.Clone()
	for k, v := range updates {
		if _, ok := profileAllowList[k]; ok {
			merged[k] = v
		}
	}

	if _, ok := merged["joinedYear"]; !ok {
		merged["joinedYear"] = DefaultJoinedYear
	}
	if _, ok := merged["contributions"]; !ok {
		merged["contributions"] = DefaultContributions
	}
	if _, ok := merged["avatarUrl"]; !ok {
		merged["avatarUrl"] = DefaultAvatarURL
	}

	return merged
}
