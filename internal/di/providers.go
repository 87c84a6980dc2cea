package di

import (
	"github.com/samber/do/v2"

	"github.com/bibliotecapp/biblioteca-server/internal/config"
	"github.com/bibliotecapp/biblioteca-server/internal/logger"
	"github.com/bibliotecapp/biblioteca-server/internal/notify"
	"github.com/bibliotecapp/biblioteca-server/internal/service"
	"github.com/bibliotecapp/biblioteca-server/internal/store"
	"github.com/bibliotecapp/biblioteca-server/internal/validation"
)

// ProvideConfig loads the application configuration.
func ProvideConfig(do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the application logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return logger.New(logger.Config{
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	}), nil
}

// ProvideStore provides the in-memory entity store.
func ProvideStore(do.Injector) (*store.Store, error) {
	return store.New(), nil
}

// ProvideNotifier provides the availability notifier. When notifications
// are enabled the console gateway is wired in; otherwise the notifier has
// no gateway and dispatch is a no-op.
func ProvideNotifier(i do.Injector) (*notify.Notifier, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	notifier := notify.NewNotifier(log.Logger)
	if cfg.Notify.Enabled {
		notifier.SetGateway(notify.NewConsoleGateway(log.Logger))
	}
	return notifier, nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideLendingService provides the lending service.
func ProvideLendingService(i do.Injector) (*service.LendingService, error) {
	st := do.MustInvoke[*store.Store](i)
	notifier := do.MustInvoke[*notify.Notifier](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLendingService(st, notifier, log.Logger), nil
}

// ProvideCatalogService provides the catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	st := do.MustInvoke[*store.Store](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(st, validator, log.Logger), nil
}
