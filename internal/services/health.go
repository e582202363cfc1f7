package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/localnerve/travel-home-api/internal/config"
	"github.com/localnerve/travel-home-api/internal/store"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	Uploads      string            `json:"uploads"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, s *store.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check the database file. Absent is fine (first run), unreadable is not.
	if info, err := os.Stat(s.Path()); err != nil {
		if os.IsNotExist(err) {
			result.Store = "empty"
			result.Details["store_path"] = s.Path()
		} else {
			result.Status = "unhealthy"
			result.Store = "error"
			result.Details["store_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database file error: %v", err)
			log.Printf("Health check failed - database file: %v", err)
		}
	} else {
		result.Store = "ok"
		result.Details["store_path"] = s.Path()
		result.Details["store_bytes"] = strconv.FormatInt(info.Size(), 10)

		db := s.Load()
		result.Details["spots"] = strconv.Itoa(len(db.Spots))
		result.Details["itineraries"] = strconv.Itoa(len(db.Itineraries))
	}

	// Check that the uploads directory is writable.
	if err := probeWritable(cfg.UploadsDir); err != nil {
		result.Status = "unhealthy"
		result.Uploads = "error"
		result.Details["uploads_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Uploads directory not writable: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; uploads directory not writable: %v", err)
		}
		log.Printf("Health check failed - uploads directory: %v", err)
	} else {
		result.Uploads = "ok"
		result.Details["uploads_dir"] = cfg.UploadsDir
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}

// probeWritable creates and removes a marker file in dir.
func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
