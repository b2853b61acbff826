package application

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"pokeio/internal/ports"
)

// FavoritesKey is the store key holding the JSON list of favorite references
const FavoritesKey = "favorites"

// Ledger is the persisted set of favorite references. Every toggle is
// written through to the store before it returns.
type Ledger struct {
	store  ports.KeyValueStore
	logger *zap.Logger

	mu  sync.RWMutex
	set map[string]struct{}
}

// NewLedger loads the favorites from store. An absent, unreadable or
// corrupt value yields an empty ledger.
func NewLedger(store ports.KeyValueStore, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Ledger{
		store:  store,
		logger: logger,
		set:    make(map[string]struct{}),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	raw, found, err := l.store.Get(FavoritesKey)
	if err != nil {
		l.logger.Warn("favorites unreadable, starting empty", zap.Error(err))
		return
	}
	if !found {
		return
	}

	var refs []string
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		l.logger.Warn("favorites corrupt, starting empty", zap.Error(err))
		return
	}
	for _, r := range refs {
		if r != "" {
			l.set[r] = struct{}{}
		}
	}
}

// Toggle flips membership of reference and persists the result. It returns
// the new membership. When the write fails the in-memory change is undone.
func (l *Ledger) Toggle(reference string) (bool, error) {
	if reference == "" {
		return false, &ValidationError{Field: "reference", Message: "reference is required"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, was := l.set[reference]
	if was {
		delete(l.set, reference)
	} else {
		l.set[reference] = struct{}{}
	}

	if err := l.persist(); err != nil {
		if was {
			l.set[reference] = struct{}{}
		} else {
			delete(l.set, reference)
		}
		return was, fmt.Errorf("save favorites: %w", err)
	}
	return !was, nil
}

// Has reports whether reference is a favorite
func (l *Ledger) Has(reference string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.set[reference]
	return ok
}

// All returns the favorite references in sorted order
func (l *Ledger) All() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sorted()
}

// Len returns the number of favorites
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.set)
}

func (l *Ledger) sorted() []string {
	refs := make([]string, 0, len(l.set))
	for r := range l.set {
		refs = append(refs, r)
	}
	slices.Sort(refs)
	return refs
}

// persist must be called with mu held
func (l *Ledger) persist() error {
	data, err := json.Marshal(l.sorted())
	if err != nil {
		return err
	}
	return l.store.Set(FavoritesKey, string(data))
}
