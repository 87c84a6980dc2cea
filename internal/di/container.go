// Package di provides dependency injection configuration for the
// biblioteca application. The notifier used to be a process-wide
// singleton; scoping it to the container gives every application and test
// its own instance.
package di

import (
	"github.com/samber/do/v2"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, ProvideConfig)
	do.Provide(injector, ProvideLogger)

	// State
	do.Provide(injector, ProvideStore)
	do.Provide(injector, ProvideNotifier)

	// Business services
	do.Provide(injector, ProvideValidator)
	do.Provide(injector, ProvideLendingService)
	do.Provide(injector, ProvideCatalogService)

	return injector
}
