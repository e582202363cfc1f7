package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/store"
)

// TestLoadMissingFile tests that a missing database loads as the empty default
func TestLoadMissingFile(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "db.json"))

	db := s.Load()
	if db == nil {
		t.Fatal("Expected a document, got nil")
	}
	if len(db.Spots) != 0 || len(db.Categories) != 0 || len(db.Reviews) != 0 || len(db.Itineraries) != 0 {
		t.Error("Expected all collections empty")
	}
	if db.Profile == nil || len(db.Profile) != 0 {
		t.Error("Expected an empty profile map")
	}
}

// TestLoadCorruptFile tests that an unparsable database loads as the empty default
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	db := store.Open(path).Load()
	if len(db.Spots) != 0 || len(db.Itineraries) != 0 {
		t.Error("Expected the empty default document")
	}
}

// TestSaveLoadRoundTrip tests that a saved document reads back intact
func TestSaveLoadRoundTrip(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "db.json"))

	db := models.DefaultDatabase()
	db.Spots = append(db.Spots, models.Record{
		"id":    "spot-1",
		"title": "Masao Beach Cove",
		"tags":  []string{"beach", "popular"},
	})
	db.Profile = models.Record{"name": "Jowehl"}

	if err := s.Save(db); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded := s.Load()
	if len(loaded.Spots) != 1 {
		t.Fatalf("Expected 1 spot, got %d", len(loaded.Spots))
	}
	if loaded.Spots[0].String("title") != "Masao Beach Cove" {
		t.Errorf("Unexpected title: %q", loaded.Spots[0].String("title"))
	}
	if !loaded.Spots[0].HasTag("popular") {
		t.Error("Expected popular tag to survive the round trip")
	}
	if loaded.Profile.String("name") != "Jowehl" {
		t.Errorf("Unexpected profile name: %q", loaded.Profile.String("name"))
	}
}

// TestMutateErrorSkipsSave tests that a failing mutation leaves the file alone
func TestMutateErrorSkipsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := store.Open(path)

	boom := errors.New("boom")
	err := s.Mutate(func(db *models.Database) error {
		db.Itineraries = append(db.Itineraries, models.Record{"id": "x"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected the mutation error, got %v", err)
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be written for a failed mutation")
	}
}

// TestMutatePersists tests the load-modify-save cycle
func TestMutatePersists(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "db.json"))

	err := s.Mutate(func(db *models.Database) error {
		db.Itineraries = append(db.Itineraries, models.Record{"id": "trip-1"})
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	if got := len(s.Load().Itineraries); got != 1 {
		t.Errorf("Expected 1 itinerary after mutate, got %d", got)
	}
}
