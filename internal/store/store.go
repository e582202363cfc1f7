package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/localnerve/travel-home-api/internal/models"
)

// Store reads and writes the whole database document at a fixed path.
// Every request works on a fresh load; there is no cross-request cache.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a store bound to the given file path. The file does not
// need to exist yet.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the on-disk location of the database file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk. A missing or unparsable file yields
// the empty default document; load never fails past this boundary.
func (s *Store) Load() *models.Database {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.DefaultDatabase()
	}

	db := models.DefaultDatabase()
	if err := json.Unmarshal(raw, db); err != nil {
		log.Printf("store: unreadable database at %s, starting empty: %v", s.path, err)
		return models.DefaultDatabase()
	}

	// Explicit nulls in the file must not leak nil collections to callers.
	if db.Spots == nil {
		db.Spots = []models.Record{}
	}
	if db.Categories == nil {
		db.Categories = []models.Record{}
	}
	if db.Reviews == nil {
		db.Reviews = []models.Record{}
	}
	if db.Itineraries == nil {
		db.Itineraries = []models.Record{}
	}
	if db.Profile == nil {
		db.Profile = models.Record{}
	}
	return db
}

// Save serializes the full document and overwrites the file in place.
// The write is a plain truncating write; a crash mid-write can corrupt the
// file. Last writer wins at document granularity.
func (s *Store) Save(db *models.Database) error {
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}

// Mutate runs one load-modify-save cycle under the store's mutex, so two
// in-process writers cannot interleave their read and write halves. If fn
// returns an error the document is not saved.
func (s *Store) Mutate(fn func(db *models.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.Load()
	if err := fn(db); err != nil {
		return err
	}
	return s.Save(db)
}
