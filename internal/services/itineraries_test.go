package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/localnerve/travel-home-api/internal/models"
	"github.com/localnerve/travel-home-api/internal/services"
	"github.com/localnerve/travel-home-api/internal/types"
)

// TestCreateItineraryGeneratesID tests id generation and timestamps
func TestCreateItineraryGeneratesID(t *testing.T) {
	db := models.DefaultDatabase()
	db.Itineraries = append(db.Itineraries, models.Record{"id": "existing"})

	created, err := services.CreateItinerary(db, models.Record{"title": "Weekend loop"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	id := created.String("id")
	if id == "" || id == "existing" {
		t.Errorf("Expected a fresh generated id, got %q", id)
	}
	if created.String("createdAt") == "" || created["createdAt"] != created["updatedAt"] {
		t.Error("Expected createdAt and updatedAt set to the same instant")
	}
	if _, parseErr := time.Parse(time.RFC3339, created.String("createdAt")); parseErr != nil {
		t.Errorf("createdAt is not RFC3339: %v", parseErr)
	}
	if len(db.Itineraries) != 2 {
		t.Errorf("Expected the itinerary appended, collection has %d", len(db.Itineraries))
	}
}

// TestCreateItineraryConflict tests duplicate ids leave the collection unchanged
func TestCreateItineraryConflict(t *testing.T) {
	db := models.DefaultDatabase()
	db.Itineraries = append(db.Itineraries, models.Record{"id": "trip-1", "title": "Original"})

	_, err := services.CreateItinerary(db, models.Record{"id": "trip-1", "title": "Clone"})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 409 {
		t.Fatalf("Expected a 409 conflict, got %v", err)
	}

	if len(db.Itineraries) != 1 || db.Itineraries[0].String("title") != "Original" {
		t.Error("Expected the collection unchanged after a conflict")
	}
}

// TestUpdateItineraryMerges tests shallow merge across successive updates
func TestUpdateItineraryMerges(t *testing.T) {
	db := models.DefaultDatabase()
	created, err := services.CreateItinerary(db, models.Record{"id": "a", "title": "X"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	firstStamp := created.String("updatedAt")

	updated, err := services.UpdateItinerary(db, "a", models.Record{"note": "Y", "id": "evil"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.String("title") != "X" {
		t.Error("Expected fields absent from the payload to survive")
	}
	if updated.String("note") != "Y" {
		t.Error("Expected payload fields applied")
	}
	if updated.String("id") != "a" {
		t.Errorf("Expected id pinned to the path value, got %q", updated.String("id"))
	}
	if updated.String("updatedAt") < firstStamp {
		t.Error("Expected updatedAt to move forward")
	}
}

// TestUpdateItineraryNotFound tests the not-found outcome
func TestUpdateItineraryNotFound(t *testing.T) {
	db := models.DefaultDatabase()

	_, err := services.UpdateItinerary(db, "ghost", models.Record{"title": "X"})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("Expected a 404, got %v", err)
	}
}

// TestDeleteItinerary tests removal and not-found by length comparison
func TestDeleteItinerary(t *testing.T) {
	db := models.DefaultDatabase()
	db.Itineraries = append(db.Itineraries, models.Record{"id": "trip-1"}, models.Record{"id": "trip-2"})

	if err := services.DeleteItinerary(db, "trip-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(db.Itineraries) != 1 || db.Itineraries[0].String("id") != "trip-2" {
		t.Error("Expected only trip-2 to remain")
	}

	err := services.DeleteItinerary(db, "ghost")
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("Expected a 404, got %v", err)
	}
	if len(db.Itineraries) != 1 {
		t.Error("Expected collection length unchanged after failed delete")
	}
}
