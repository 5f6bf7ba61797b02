package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/clipboard"
	"github.com/markstashapp/markstash-server/internal/config"
	"github.com/markstashapp/markstash-server/internal/favicon"
	"github.com/markstashapp/markstash-server/internal/logger"
	"github.com/markstashapp/markstash-server/internal/sse"
	"github.com/markstashapp/markstash-server/internal/store"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Manager.Shutdown(ctx)
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the badger-backed store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideFaviconClient provides the favicon/title enrichment client.
func ProvideFaviconClient(i do.Injector) (*favicon.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	return favicon.NewClient(cfg.Favicon, log), nil
}

// ProvideClipboard provides the system clipboard writer.
func ProvideClipboard(i do.Injector) (clipboard.Writer, error) {
	return clipboard.NewSystem(), nil
}

// ProvideCatalog provides the bookmark/folder catalog, loaded from the
// store with the seed dataset as first-run fallback.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	faviconClient := do.MustInvoke[*favicon.Client](i)
	clip := do.MustInvoke[clipboard.Writer](i)
	log := do.MustInvoke[*logger.Logger](i)

	cat, err := catalog.New(context.Background(), storeHandle.Store, catalog.Options{
		Emitter:   sseHandle.Manager,
		Enricher:  faviconClient,
		Clipboard: clip,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded",
		"folders", len(cat.Folders()),
		"bookmarks", len(cat.Bookmarks()))

	return cat, nil
}
