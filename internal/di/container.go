// Package di provides dependency injection configuration for the MarkStash server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/config"
	"github.com/markstashapp/markstash-server/internal/di/providers"
	"github.com/markstashapp/markstash-server/internal/favicon"
	"github.com/markstashapp/markstash-server/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStore)

	// Collaborators
	do.Provide(injector, providers.ProvideFaviconClient)
	do.Provide(injector, providers.ProvideClipboard)

	// Catalog
	do.Provide(injector, providers.ProvideCatalog)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is
// running. This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*favicon.Client](injector)
	_ = do.MustInvoke[*catalog.Catalog](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
