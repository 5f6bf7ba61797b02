// Package catalog owns the folder and bookmark collections. It applies
// every mutation in memory, persists both collections through the
// injected store, and broadcasts change events.
package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/markstashapp/markstash-server/internal/clipboard"
	"github.com/markstashapp/markstash-server/internal/domain"
	domainerrors "github.com/markstashapp/markstash-server/internal/errors"
	"github.com/markstashapp/markstash-server/internal/logger"
	"github.com/markstashapp/markstash-server/internal/store"
	"github.com/markstashapp/markstash-server/internal/validation"
)

// Persister is the storage dependency. The badger-backed store
// implements it; tests substitute an in-memory fake.
type Persister interface {
	LoadCollections(ctx context.Context) ([]domain.Folder, []domain.Bookmark, error)
	SaveCollections(ctx context.Context, folders []domain.Folder, bookmarks []domain.Bookmark) error
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}

// EventEmitter is the interface for broadcasting change events.
// The SSE manager implements it.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// Enricher resolves favicon URLs and page titles for new bookmarks.
type Enricher interface {
	IconURL(rawURL string) string
	TitlesEnabled() bool
	PageTitle(ctx context.Context, rawURL string) (string, error)
}

// NoopEnricher disables enrichment; used in tests.
type NoopEnricher struct{}

// IconURL implements Enricher with no icon service.
func (NoopEnricher) IconURL(string) string { return "" }

// TitlesEnabled implements Enricher; titles are never fetched.
func (NoopEnricher) TitlesEnabled() bool { return false }

// PageTitle implements Enricher as a no-op.
func (NoopEnricher) PageTitle(context.Context, string) (string, error) { return "", nil }

// Catalog is the repository for folders and bookmarks. All reads and
// mutations go through it; it is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	folders   []domain.Folder
	bookmarks []domain.Bookmark
	index     *domain.FolderIndex

	persister Persister
	selection *domain.Selection
	emitter   EventEmitter
	enricher  Enricher
	clipboard clipboard.Writer
	validate  *validation.Validator
	log       *logger.Logger
}

// Options carries the catalog's collaborators.
type Options struct {
	Emitter   EventEmitter
	Enricher  Enricher
	Clipboard clipboard.Writer
	Logger    *logger.Logger
}

// New loads both collections from the persister and builds the
// catalog. Missing or corrupt data falls back to the seed dataset,
// which is persisted immediately so the next start loads it normally.
func New(ctx context.Context, persister Persister, opts Options) (*Catalog, error) {
	if opts.Emitter == nil {
		opts.Emitter = NoopEmitter{}
	}
	if opts.Enricher == nil {
		opts.Enricher = NoopEnricher{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewNoop()
	}

	c := &Catalog{
		persister: persister,
		selection: domain.NewSelection(),
		emitter:   opts.Emitter,
		enricher:  opts.Enricher,
		clipboard: opts.Clipboard,
		validate:  validation.New(),
		log:       opts.Logger,
	}

	folders, bookmarks, err := persister.LoadCollections(ctx)
	switch {
	case err == nil:
		c.folders, c.bookmarks = folders, bookmarks
	case domainerrors.Is(err, store.ErrNoData):
		c.folders, c.bookmarks = domain.SeedFolders(), domain.SeedBookmarks()
		if c.log != nil {
			c.log.Info("no stored catalog, seeding demo data",
				"folders", len(c.folders), "bookmarks", len(c.bookmarks))
		}
		if err := persister.SaveCollections(ctx, c.folders, c.bookmarks); err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "persist seed data")
		}
	default:
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "load catalog")
	}

	c.rebuildIndex()
	return c, nil
}

// Selection returns the live selection manager.
func (c *Catalog) Selection() *domain.Selection {
	return c.selection
}

// Folders returns a copy of the folder collection.
func (c *Catalog) Folders() []domain.Folder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.folders)
}

// Bookmarks returns a copy of the bookmark collection.
func (c *Catalog) Bookmarks() []domain.Bookmark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.bookmarks)
}

// Theme returns the persisted theme preference.
func (c *Catalog) Theme(ctx context.Context) (domain.Theme, error) {
	return c.persister.GetTheme(ctx)
}

// SetTheme validates and persists the theme preference.
func (c *Catalog) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return domainerrors.Validationf("unknown theme %q", theme)
	}
	if err := c.persister.SetTheme(ctx, theme); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "persist theme")
	}
	c.emitThemeChanged(theme)
	return nil
}

// rebuildIndex recomputes the parent→children adjacency index.
// Callers must hold the write lock.
func (c *Catalog) rebuildIndex() {
	c.index = domain.NewFolderIndex(c.folders)
}

// commit persists the proposed collections and, on success, swaps them
// in and rebuilds the index. Callers must hold the write lock.
func (c *Catalog) commit(ctx context.Context, folders []domain.Folder, bookmarks []domain.Bookmark) error {
	if err := c.persister.SaveCollections(ctx, folders, bookmarks); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "persist catalog")
	}
	c.folders, c.bookmarks = folders, bookmarks
	c.rebuildIndex()
	return nil
}
