package di

import (
	"fmt"

	"go.uber.org/zap"

	"pokeio/internal/adapters/metrics"
	"pokeio/internal/adapters/pokeapi"
	"pokeio/internal/adapters/sqlite"
	"pokeio/internal/application"
	"pokeio/internal/config"
	"pokeio/internal/logging"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "pokeio"

// Container holds the process-wide components built from a Config
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    *sqlite.Store
	Metrics  *metrics.Collector
	Services *application.Services
}

// ProvideLogger builds the logger. logFile overrides the configured file
// when non-empty.
func ProvideLogger(cfg *config.Config, logFile string) (*zap.Logger, error) {
	if logFile == "" {
		logFile = cfg.LogFile
	}
	return logging.New(cfg.LogLevel, logFile)
}

// ProvideStore opens the favorites database
func ProvideStore(cfg *config.Config) (*sqlite.Store, error) {
	return sqlite.Open(cfg.DBPath)
}

// NewContainer wires the HTTP transport, its metrics, the store and the
// application services
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	store, err := ProvideStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	collector := metrics.NewCollector(MetricsNamespace)
	transport := metrics.Instrument(pokeapi.NewClient(cfg.HTTPTimeout, logger.Named("http")), collector)

	services := application.NewServices(transport, store, application.Options{
		BaseURL:       cfg.APIBaseURL,
		RosterCeiling: cfg.RosterCeiling,
		TypeLimit:     cfg.TypeLimit,
	}, logger)

	logger.Debug("container ready",
		zap.String("api", cfg.APIBaseURL),
		zap.String("db", store.Path()),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Metrics:  collector,
		Services: services,
	}, nil
}

// Close releases the store and flushes the logger
func (c *Container) Close() error {
	err := c.Store.Close()
	_ = c.Logger.Sync()
	return err
}
