package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/markstashapp/markstash-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/MarkStash/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	var folders []domain.Folder
	var bookmarks []domain.Bookmark
	theme := "(not set)"

	err = db.View(func(txn *badger.Txn) error {
		if item, err := txn.Get([]byte("markstash:folders")); err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &folders)
			}); err != nil {
				log.Printf("Error reading folders: %v", err)
			}
		}

		if item, err := txn.Get([]byte("markstash:bookmarks")); err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &bookmarks)
			}); err != nil {
				log.Printf("Error reading bookmarks: %v", err)
			}
		}

		if item, err := txn.Get([]byte("markstash:theme")); err == nil {
			_ = item.Value(func(val []byte) error {
				theme = string(val)
				return nil
			})
		}

		return nil
	})
	if err != nil {
		log.Fatalf("Error reading database: %v", err)
	}

	fmt.Printf("Theme: %s\n", theme)
	fmt.Println()

	fmt.Printf("Folders: %d\n", len(folders))
	for _, f := range folders {
		parent := f.ParentID
		if parent == "" {
			parent = "-"
		}
		fmt.Printf("  %-24s %-30s parent=%s\n", f.ID, f.Name, parent)
	}
	fmt.Println()

	fmt.Printf("Bookmarks: %d\n", len(bookmarks))
	starred := 0
	for _, b := range bookmarks {
		marker := " "
		if b.Starred {
			marker = "*"
			starred++
		}
		fmt.Printf("  %s %-28s %-40s folder=%s tags=%v\n", marker, b.ID, b.URL, b.FolderID, b.Tags)
	}
	fmt.Println()

	fmt.Println("=== Summary ===")
	fmt.Printf("Total folders: %d\n", len(folders))
	fmt.Printf("Total bookmarks: %d (%d starred)\n", len(bookmarks), starred)
}
