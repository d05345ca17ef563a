package cache

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is the freshness window for cached reads.
const DefaultTTL = 5 * time.Minute

const keySep = "\x00"

type entry struct {
	value      any
	fetchedAt  time.Time
	refreshing bool
}

// Store caches read results keyed by (resource, filter). Entries older than
// the TTL are served as-is while a background refresh runs
// (stale-while-revalidate). Invalidation is coarse: any mutation on a
// resource drops every cached filter for it.
type Store struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group

	now func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Get returns the cached value for (resource, filter), calling fetch when no
// entry exists. Concurrent first reads of the same key share one fetch. A
// failed fetch is retried once before the error surfaces.
func (s *Store) Get(resource, filter string, fetch func() (any, error)) (any, error) {
	key := resource + keySep + filter

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		v := e.value
		if s.now().Sub(e.fetchedAt) >= s.ttl && !e.refreshing {
			e.refreshing = true
			go s.refresh(key, e, fetch)
		}
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		return fetchWithRetry(fetch)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = &entry{value: v, fetchedAt: s.now()}
	s.mu.Unlock()
	return v, nil
}

// Invalidate drops every cached entry for resource, whatever its filter.
func (s *Store) Invalidate(resource string) {
	prefix := resource + keySep
	s.mu.Lock()
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

func (s *Store) refresh(key string, e *entry, fetch func() (any, error)) {
	v, err := fetchWithRetry(fetch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.entries[key]; !ok || cur != e {
		// Invalidated or repopulated while refreshing; the result predates
		// the mutation, drop it.
		return
	}
	e.refreshing = false
	if err != nil {
		// Keep serving the last known value.
		slog.Warn("cache refresh failed", "key", key, "error", err)
		return
	}
	e.value = v
	e.fetchedAt = s.now()
}

func fetchWithRetry(fetch func() (any, error)) (any, error) {
	v, err := fetch()
	if err == nil {
		return v, nil
	}
	return fetch()
}
