// Package main provides a tool to write the demo dataset into a MarkStash database.
//
// Usage:
//
//	DB_PATH=~/MarkStash/data/db go run ./cmd/seed
//	DB_PATH=~/MarkStash/data/db go run ./cmd/seed --force  # Overwrite existing data
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markstashapp/markstash-server/internal/domain"
	"github.com/markstashapp/markstash-server/internal/store"
)

var force = flag.Bool("force", false, "Overwrite existing folders and bookmarks")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/MarkStash/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	folders, bookmarks, err := s.LoadCollections(ctx)
	switch {
	case errors.Is(err, store.ErrNoData):
		// Empty database, safe to seed
	case err != nil:
		log.Fatalf("Failed to read existing data: %v", err)
	default:
		if !*force {
			log.Fatalf("Database already has %d folders and %d bookmarks. Use --force to overwrite.",
				len(folders), len(bookmarks))
		}
		fmt.Printf("Overwriting %d folders and %d bookmarks\n", len(folders), len(bookmarks))
	}

	seedFolders := domain.SeedFolders()
	seedBookmarks := domain.SeedBookmarks()

	if err := s.SaveCollections(ctx, seedFolders, seedBookmarks); err != nil {
		log.Fatalf("Failed to write seed data: %v", err)
	}

	fmt.Printf("Wrote %d folders and %d bookmarks\n", len(seedFolders), len(seedBookmarks))
	fmt.Println("Seeding complete!")
}
