package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/markstashapp/markstash-server/internal/domain"
)

// GetTheme returns the persisted theme preference, or the default when
// none has been saved yet.
func (s *Store) GetTheme(ctx context.Context) (domain.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := s.get(keyTheme)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}

	theme := domain.Theme(data)
	if !theme.Valid() {
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyTheme), []byte(theme))
	})
}
