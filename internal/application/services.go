package application

import (
	"go.uber.org/zap"

	"pokeio/internal/ports"
)

// Options sizes the services built by NewServices. Zero values fall back to
// the package defaults.
type Options struct {
	BaseURL       string
	RosterCeiling int
	TypeLimit     int
}

// Services bundles the components every front-end drives. One instance
// lives for the whole process so all callers share the same caches.
type Services struct {
	Endpoints  Endpoints
	Caches     *Caches
	Roster     *Roster
	Aggregator *Aggregator
	Types      *TypePreloader
	Favorites  *Ledger
}

// NewServices wires the core over transport and store
func NewServices(transport ports.Transport, store ports.KeyValueStore, opts Options, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoints := NewEndpoints(opts.BaseURL)
	caches := NewCaches()
	return &Services{
		Endpoints:  endpoints,
		Caches:     caches,
		Roster:     NewRoster(transport, endpoints, opts.RosterCeiling, logger.Named("roster")),
		Aggregator: NewAggregator(transport, caches, logger.Named("aggregator")),
		Types:      NewTypePreloader(transport, endpoints, opts.TypeLimit, caches, logger.Named("types")),
		Favorites:  NewLedger(store, logger.Named("favorites")),
	}
}
