package services_test

import (
	"testing"

	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/services"
)

// TestDefaultProfile tests the placeholder identity literals
func TestDefaultProfile(t *testing.T) {
	profile := services.DefaultProfile()

	if profile.String("name") != "Jowehl" {
		t.Errorf("Unexpected default name: %q", profile.String("name"))
	}
	if profile.String("avatarUrl") != "/placeholder-user.jpg" {
		t.Errorf("Unexpected default avatarUrl: %q", profile.String("avatarUrl"))
	}
	if profile["joinedYear"] != 2025 || profile["contributions"] != 0 {
		t.Error("Unexpected default joinedYear/contributions")
	}
}

// TestMergeProfileAllowList tests that unknown fields are dropped silently
func TestMergeProfileAllowList(t *testing.T) {
	current := models.Record{"name": "Jowehl", "city": "Butuan"}

	merged := services.MergeProfile(current, models.Record{
		"hacker": "x",
		"city":   "Manila",
	})

	if merged.String("city") != "Manila" {
		t.Errorf("Expected city updated, got %q", merged.String("city"))
	}
	if _, ok := merged["hacker"]; ok {
		t.Error("Expected unknown field to be dropped")
	}
	if merged.String("name") != "Jowehl" {
		t.Error("Expected untouched fields to survive")
	}
	if current.String("city") != "Butuan" {
		t.Error("Expected the input record to stay unmodified")
	}
}

// TestMergeProfileBackfill tests defaults applied to still-missing fields
func TestMergeProfileBackfill(t *testing.T) {
	merged := services.MergeProfile(models.Record{}, models.Record{"name": "Ana"})

	if merged["joinedYear"] != 2025 {
		t.Errorf("Expected joinedYear back-filled, got %v", merged["joinedYear"])
	}
	if merged["contributions"] != 0 {
		t.Errorf("Expected contributions back-filled, got %v", merged["contributions"])
	}
	if merged.String("avatarUrl") != "/placeholder-user.jpg" {
		t.Errorf("Expected avatarUrl back-filled, got %q", merged.String("avatarUrl"))
	}

	// A caller-supplied value is not overwritten by the back-fill.
	merged = services.MergeProfile(models.Record{}, models.Record{"joinedYear": 2020})
	if merged["joinedYear"] != 2020 {
		t.Errorf("Expected caller joinedYear kept, got %v", merged["joinedYear"])
	}
}
