package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/markstashapp/markstash-server/internal/domain"
)

// ErrNoData is returned by LoadCollections when no usable catalog
// exists on disk. Callers are expected to fall back to the seed
// dataset.
var ErrNoData = errors.New("no catalog data")

// LoadCollections reads both persisted collections. A missing or
// unreadable collection yields ErrNoData rather than a partial result:
// folders and bookmarks reference each other, so they are only loaded
// as a pair.
func (s *Store) LoadCollections(ctx context.Context) ([]domain.Folder, []domain.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	rawFolders, err := s.get(keyFolders)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil, ErrNoData
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load folders: %w", err)
	}

	rawBookmarks, err := s.get(keyBookmarks)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil, ErrNoData
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load bookmarks: %w", err)
	}

	var folders []domain.Folder
	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(rawFolders, &folders); err != nil {
		s.warnCorrupt(keyFolders, err)
		return nil, nil, ErrNoData
	}
	if err := json.Unmarshal(rawBookmarks, &bookmarks); err != nil {
		s.warnCorrupt(keyBookmarks, err)
		return nil, nil, ErrNoData
	}

	return folders, bookmarks, nil
}

// SaveCollections persists both collections in a single transaction so
// a crash between writes can never leave folders and bookmarks
// referencing each other inconsistently.
func (s *Store) SaveCollections(ctx context.Context, folders []domain.Folder, bookmarks []domain.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	folderData, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("marshal folders: %w", err)
	}
	bookmarkData, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("marshal bookmarks: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyFolders), folderData); err != nil {
			return err
		}
		return txn.Set([]byte(keyBookmarks), bookmarkData)
	})
}

func (s *Store) warnCorrupt(key string, err error) {
	if s.log != nil {
		s.log.Warn("stored collection is corrupt, falling back to defaults", "key", key, "error", err)
	}
}
