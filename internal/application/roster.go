package application

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"pokeio/internal/domain"
	"pokeio/internal/ports"
)

// DefaultRosterCeiling is the highest national dex id kept in the roster
const DefaultRosterCeiling = 1025

// Membership answers whether a reference is a favorite
type Membership interface {
	Has(reference string) bool
}

// Filter is the set of roster predicates. Zero values are inactive, so the
// zero Filter matches everything.
type Filter struct {
	Generation    int    // 0 = all generations
	Query         string // name substring or exact id
	FavoritesOnly bool
	Favorites     Membership
}

// Match reports whether stub satisfies every active predicate
func (f Filter) Match(stub domain.Stub) bool {
	if f.Generation != 0 {
		// Unknown bands fall back to "all"
		if gen, ok := domain.LookupGeneration(f.Generation); ok && !gen.Contains(stub.ID) {
			return false
		}
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		nameMatch := strings.Contains(strings.ToLower(stub.Name), strings.ToLower(q))
		idMatch := strconv.Itoa(stub.ID) == q
		if !nameMatch && !idMatch {
			return false
		}
	}

	if f.FavoritesOnly {
		if f.Favorites == nil || !f.Favorites.Has(stub.Reference) {
			return false
		}
	}

	return true
}

// FilterStubs returns the stubs matching f in their original order
func FilterStubs(stubs []domain.Stub, f Filter) []domain.Stub {
	out := make([]domain.Stub, 0, len(stubs))
	for _, s := range stubs {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// Roster holds the flat list of stubs fetched once with a single bulk
// request. Concurrent loads share one in-flight request.
type Roster struct {
	transport ports.Transport
	endpoints Endpoints
	ceiling   int
	logger    *zap.Logger

	group singleflight.Group

	mu    sync.RWMutex
	stubs []domain.Stub
}

// NewRoster creates an empty roster. A ceiling <= 0 uses DefaultRosterCeiling.
func NewRoster(transport ports.Transport, endpoints Endpoints, ceiling int, logger *zap.Logger) *Roster {
	if ceiling <= 0 {
		ceiling = DefaultRosterCeiling
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roster{
		transport: transport,
		endpoints: endpoints,
		ceiling:   ceiling,
		logger:    logger,
	}
}

// LoadAll fetches the roster and replaces the held collection. A call made
// while another load is in flight waits for and returns that load's result.
// The shared load is detached from any one caller: cancelling ctx only stops
// this caller from waiting.
func (r *Roster) LoadAll(ctx context.Context) ([]domain.Stub, error) {
	ch := r.group.DoChan("roster", func() (any, error) {
		return r.load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			r.logger.Debug("roster load shared with in-flight request")
		}
		return slices.Clone(res.Val.([]domain.Stub)), nil
	}
}

func (r *Roster) load(ctx context.Context) ([]domain.Stub, error) {
	url := r.endpoints.PokemonList(r.ceiling)
	list, err := Fetch[ports.ResourceList](ctx, r.transport, url, nil, "")
	if err != nil {
		r.logger.Error("roster load failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	stubs := make([]domain.Stub, 0, len(list.Results))
	dropped := 0
	for _, entry := range list.Results {
		id, err := domain.ParseStubID(entry.URL)
		if err != nil {
			r.logger.Warn("skipping roster entry", zap.String("name", entry.Name), zap.Error(err))
			dropped++
			continue
		}
		if id > r.ceiling {
			dropped++
			continue
		}
		stubs = append(stubs, domain.Stub{ID: id, Name: entry.Name, Reference: entry.URL})
	}

	r.mu.Lock()
	r.stubs = stubs
	r.mu.Unlock()

	r.logger.Info("roster loaded", zap.Int("entries", len(stubs)), zap.Int("dropped", dropped))
	return stubs, nil
}

// Stubs returns the currently held collection
func (r *Roster) Stubs() []domain.Stub {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.stubs)
}

// Len returns the number of held stubs
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stubs)
}

// Filter applies f to the held collection
func (r *Roster) Filter(f Filter) []domain.Stub {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FilterStubs(r.stubs, f)
}

// Find looks up a single stub by id ("25", "#025"), exact name or reference
func (r *Roster) Find(query string) (domain.Stub, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return domain.Stub{}, &ValidationError{Field: "query", Message: "query is required"}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, err := strconv.Atoi(strings.TrimPrefix(q, "#")); err == nil {
		for _, s := range r.stubs {
			if s.ID == id {
				return s, nil
			}
		}
		return domain.Stub{}, &NotFoundError{Query: query}
	}

	for _, s := range r.stubs {
		if strings.EqualFold(s.Name, q) || s.Reference == q {
			return s, nil
		}
	}
	return domain.Stub{}, &NotFoundError{Query: query}
}
