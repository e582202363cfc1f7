// Seeds the database file with the embedded starter dataset. Refuses to
// overwrite an existing database unless -force is given.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/localnerve/travel-home-api/data"
	"github.com/localnerve/travel-home-api/internal/config"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing database file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := os.Stat(cfg.DBPath); err == nil && !*force {
		log.Fatalf("Database already exists at %s (use -force to overwrite)", cfg.DBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}
	if err := os.WriteFile(cfg.DBPath, data.SeedDB, 0644); err != nil {
		log.Fatalf("Failed to write database: %v", err)
	}

	log.Printf("Seeded database at %s", cfg.DBPath)
}
