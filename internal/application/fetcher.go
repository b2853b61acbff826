package application

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"pokeio/internal/ports"
)

// Memo is a keyed cache that never evicts. Entries are written only after a
// successful lookup, so a failed key is retried on the next request.
type Memo[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// NewMemo creates an empty memo
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{entries: make(map[string]T)}
}

// Get returns the cached value for key
func (m *Memo[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Put stores value under key
func (m *Memo[T]) Put(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Len returns the number of cached entries
func (m *Memo[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Keys returns the cached keys in sorted order
func (m *Memo[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Fetch resolves url into a T. When memo is non-nil and already holds key,
// no request is made. Otherwise the transport is called; a transport failure,
// a non-2xx status or an undecodable body yields a *FetchError and leaves the
// memo untouched. An empty key disables the memo.
func Fetch[T any](ctx context.Context, transport ports.Transport, url string, memo *Memo[T], key string) (T, error) {
	var zero T

	if memo != nil && key != "" {
		if v, ok := memo.Get(key); ok {
			return v, nil
		}
	}

	resp, err := transport.Get(ctx, url)
	if err != nil {
		return zero, &FetchError{URL: url, Err: err}
	}
	if !resp.OK() {
		return zero, &FetchError{URL: url, Status: resp.Status}
	}

	var v T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return zero, &FetchError{URL: url, Status: resp.Status, Err: fmt.Errorf("%w: %v", ErrParse, err)}
	}

	if memo != nil && key != "" {
		memo.Put(key, v)
	}
	return v, nil
}
