package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"pokeio/internal/domain"
	"pokeio/internal/ports"
)

// DefaultTypeLimit is large enough for every elemental type the API lists
const DefaultTypeLimit = 30

// TypePreloader fills the type relation cache once at startup. The
// aggregator only reads that cache; it never fetches a type on demand.
type TypePreloader struct {
	transport ports.Transport
	endpoints Endpoints
	limit     int
	types     *Memo[domain.TypeRelations]
	logger    *zap.Logger

	group    singleflight.Group
	complete atomic.Bool
}

// NewTypePreloader creates a preloader writing into caches.Types
func NewTypePreloader(transport ports.Transport, endpoints Endpoints, limit int, caches *Caches, logger *zap.Logger) *TypePreloader {
	if limit <= 0 {
		limit = DefaultTypeLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TypePreloader{
		transport: transport,
		endpoints: endpoints,
		limit:     limit,
		types:     caches.Types,
		logger:    logger,
	}
}

// PreloadAll fetches the type list and every type record concurrently.
// Records that load are cached even when others fail; the first failure is
// returned.
func (p *TypePreloader) PreloadAll(ctx context.Context) error {
	url := p.endpoints.TypeList(p.limit)
	list, err := Fetch[ports.ResourceList](ctx, p.transport, url, nil, "")
	if err != nil {
		return fmt.Errorf("type list: %w", err)
	}

	var (
		mu       sync.Mutex
		firstErr error
		failed   int
	)

	var g errgroup.Group
	for _, entry := range list.Results {
		if _, ok := p.types.Get(entry.Name); ok {
			continue
		}
		g.Go(func() error {
			record, err := Fetch[ports.TypeRecord](ctx, p.transport, entry.URL, nil, "")
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				failed++
				mu.Unlock()
				p.logger.Warn("type relations unavailable", zap.String("type", entry.Name), zap.Error(err))
				return nil
			}
			p.types.Put(record.Name, relationsFromRecord(record))
			return nil
		})
	}
	_ = g.Wait()

	p.logger.Info("type relations preloaded",
		zap.Int("types", p.types.Len()),
		zap.Int("failed", failed),
	)
	if firstErr != nil {
		return fmt.Errorf("preload types: %w", firstErr)
	}
	p.complete.Store(true)
	return nil
}

// Ensure returns once the type table is complete. Concurrent callers share
// one preload, and after a fully successful preload it makes no requests.
// Cancelling ctx only stops this caller from waiting.
func (p *TypePreloader) Ensure(ctx context.Context) error {
	if p.complete.Load() {
		return nil
	}
	ch := p.group.DoChan("types", func() (any, error) {
		return nil, p.PreloadAll(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// Relations returns the cached relations for a type name
func (p *TypePreloader) Relations(name string) (domain.TypeRelations, bool) {
	return p.types.Get(name)
}

// Names returns the cached type names in alphabetical order
func (p *TypePreloader) Names() []string {
	return p.types.Keys()
}

func relationsFromRecord(r ports.TypeRecord) domain.TypeRelations {
	return domain.TypeRelations{
		Name:       r.Name,
		DoubleFrom: resourceNames(r.DamageRelations.DoubleDamageFrom),
		HalfFrom:   resourceNames(r.DamageRelations.HalfDamageFrom),
		NoneFrom:   resourceNames(r.DamageRelations.NoDamageFrom),
	}
}

func resourceNames(rs []ports.NamedResource) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}
