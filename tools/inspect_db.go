package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/localnerve/travel-home-api/internal/store"
)

func main() {
	path := "data/db.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if _, err := os.Stat(path); err != nil {
		log.Fatal(err)
	}

	db := store.Open(path).Load()

	collections := map[string]int{
		"spots":       len(db.Spots),
		"categories":  len(db.Categories),
		"reviews":     len(db.Reviews),
		"itineraries": len(db.Itineraries),
	}
	for name, count := range collections {
		fmt.Printf("\n=== Collection: %s (%d) ===\n", name, count)
	}

	// Profile keys, sorted for a stable listing
	keys := make([]string, 0, len(db.Profile))
	for k := range db.Profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n=== Profile ===\n")
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, db.Profile[k])
	}
}
