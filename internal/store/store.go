package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/markstashapp/markstash-server/internal/logger"
)

// Keys for the persisted collections. The whole catalog is small enough
// that each collection is stored as a single JSON document, mirroring
// how the data is exchanged with clients.
const (
	keyFolders   = "markstash:folders"
	keyBookmarks = "markstash:bookmarks"
	keyTheme     = "markstash:theme"
)

// Store wraps a Badger database instance.
type Store struct {
	db  *badger.DB
	log *logger.Logger
}

// New opens the Badger database at path.
func New(path string, log *logger.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if log != nil {
		log.Info("badger database opened", "path", path)
	}

	return &Store{db: db, log: log}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.log != nil {
		s.log.Info("closing database connection")
	}
	return s.db.Close()
}

// get retrieves the raw value stored under key. Returns
// badger.ErrKeyNotFound when the key is absent.
func (s *Store) get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}
