package models_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/travel-home-api/internal/models"
)

// TestRecordTags tests tag coercion for both decoded and constructed records
func TestRecordTags(t *testing.T) {
	var decoded models.Record
	if err := json.Unmarshal([]byte(`{"tags": ["beach", "popular", 7]}`), &decoded); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	if tags := decoded.Tags(); len(tags) != 2 || tags[0] != "beach" || tags[1] != "popular" {
		t.Errorf("Expected non-string entries skipped, got %v", tags)
	}
	if !decoded.HasTag("popular") || decoded.HasTag("mountain") {
		t.Error("Unexpected HasTag results on decoded record")
	}

	constructed := models.Record{"tags": []string{"lake"}}
	if !constructed.HasTag("lake") {
		t.Error("Expected typed slices to be readable")
	}

	if tags := (models.Record{}).Tags(); tags != nil {
		t.Errorf("Expected nil tags for a record without tags, got %v", tags)
	}
}

// TestRecordString tests the string accessor ignores non-string values
func TestRecordString(t *testing.T) {
	r := models.Record{"title": "Falls", "rating": 4.5}
	if r.String("title") != "Falls" {
		t.Errorf("Unexpected title: %q", r.String("title"))
	}
	if r.String("rating") != "" || r.String("missing") != "" {
		t.Error("Expected empty string for non-string or missing values")
	}
}

// TestDefaultDatabaseSerialization tests the empty document marshals as []/{}
func TestDefaultDatabaseSerialization(t *testing.T) {
	raw, err := json.Marshal(models.DefaultDatabase())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"spots":[],"categories":[],"reviews":[],"itineraries":[],"profile":{}}`
	if string(raw) != want {
		t.Errorf("Unexpected serialization: %s", raw)
	}
}
