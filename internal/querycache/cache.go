// Package querycache provides a process-wide keyed cache for repository reads.
// Concurrent identical reads share one underlying fetch, completed reads are
// retained until a mutation invalidates them, and a failed refetch keeps the
// previously cached data visible for the caller to render alongside the error.
package querycache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// Key identifies a logical query: an entity type plus its canonical parameters.
type Key struct {
	Entity string
	Params string
}

// NewKey builds a cache key for an entity-scoped query.
func NewKey(entity, params string) Key {
	return Key{Entity: entity, Params: params}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Entity
	}
	return k.Entity + ":" + k.Params
}

// Fetcher loads fresh data for a key.
type Fetcher func(ctx context.Context) (interface{}, error)

type entry struct {
	data      interface{}
	err       error
	stale     bool
	hasData   bool
	fetcher   Fetcher
	fetchedAt time.Time
}

// Cache is the shared query cache. The zero value is not usable; use New.
type Cache struct {
	mu      sync.RWMutex
	group   singleflight.Group
	entries map[Key]*entry

	// refetchWG tracks background refetches so tests can wait for them.
	refetchWG sync.WaitGroup
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]*entry),
	}
}

// Result is what a query returns to its caller: data (possibly stale), the
// error of the most recent fetch attempt, and whether the data is stale.
type Result struct {
	Data  interface{}
	Err   error
	Stale bool
}

// Query returns cached data for key or runs fetch to populate it. Concurrent
// calls with the same key share a single fetch. A failed fetch with previously
// cached data returns that stale data together with the error.
func (c *Cache) Query(ctx context.Context, key Key, fetch Fetcher) Result {
	c.mu.RLock()
	e, ok := c.entries[key]
	if ok && e.hasData && !e.stale && e.err == nil {
		res := Result{Data: e.data}
		c.mu.RUnlock()
		return res
	}
	c.mu.RUnlock()

	data, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		return fetch(ctx)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok = c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.fetcher = fetch
	if err != nil {
		// Stale-while-error: keep old data visible, surface the error.
		e.err = err
		if e.hasData {
			return Result{Data: e.data, Err: err, Stale: true}
		}
		return Result{Err: err}
	}
	e.data = data
	e.err = nil
	e.stale = false
	e.hasData = true
	e.fetchedAt = time.Now()
	return Result{Data: data}
}

// Mutate runs a write and, only after it succeeds, applies the given
// invalidations. On failure the error is returned and no cache entry changes.
func (c *Cache) Mutate(ctx context.Context, write func(ctx context.Context) error, invalidations ...Invalidation) error {
	if err := write(ctx); err != nil {
		return err
	}
	c.Invalidate(invalidations...)
	return nil
}

// Invalidation selects cache entries to refresh after a successful mutation.
type Invalidation struct {
	key       Key
	allParams bool
}

// ByKey invalidates the exact (entity, params) query.
func ByKey(key Key) Invalidation {
	return Invalidation{key: key}
}

// ByEntity invalidates every cached query for the entity regardless of params.
func ByEntity(entity string) Invalidation {
	return Invalidation{key: Key{Entity: entity}, allParams: true}
}

// Invalidate marks matching entries stale and refetches them in the background
// so the next read observes fresh data without blocking.
func (c *Cache) Invalidate(invalidations ...Invalidation) {
	c.mu.Lock()
	var refetch []Key
	for _, inv := range invalidations {
		for key, e := range c.entries {
			if inv.allParams {
				if key.Entity != inv.key.Entity {
					continue
				}
			} else if key != inv.key {
				continue
			}
			e.stale = true
			if e.fetcher != nil {
				refetch = append(refetch, key)
			}
		}
	}
	c.mu.Unlock()

	for _, key := range refetch {
		c.refetchWG.Add(1)
		go func(key Key) {
			defer c.refetchWG.Done()
			c.refresh(key)
		}(key)
	}
}

// refresh re-runs the retained fetcher for a key and stores the outcome.
func (c *Cache) refresh(key Key) {
	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok || e.fetcher == nil {
		c.mu.RUnlock()
		return
	}
	fetch := e.fetcher
	c.mu.RUnlock()

	data, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		return fetch(context.Background())
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok = c.entries[key]
	if !ok {
		return
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key.String()).Msg("Background refetch failed, keeping stale data")
		e.err = err
		return
	}
	e.data = data
	e.err = nil
	e.stale = false
	e.hasData = true
	e.fetchedAt = time.Now()
}

// Drop removes matching entries entirely. Used when invalidated data must not
// be served even stale, e.g. materials of a deleted course.
func (c *Cache) Drop(invalidations ...Invalidation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, inv := range invalidations {
		for key := range c.entries {
			if inv.allParams {
				if key.Entity != inv.key.Entity {
					continue
				}
			} else if key != inv.key {
				continue
			}
			delete(c.entries, key)
		}
	}
}

// Wait blocks until in-flight background refetches finish.
func (c *Cache) Wait() {
	c.refetchWG.Wait()
}

// Peek reports whether key currently holds non-stale data. Intended for tests.
func (c *Cache) Peek(key Key) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || !e.hasData || e.stale {
		return nil, false
	}
	return e.data, true
}
