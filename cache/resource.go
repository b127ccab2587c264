package cache

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/FallenDeity/PokeLance/ports"
)

// bulkConcurrency bounds the number of in-flight fetches during a bulk
// load so priming a large category does not stampede the service.
const bulkConcurrency = 8

// FetchFunc retrieves and decodes a single resource by name or decimal
// id. Supplied by the transport layer.
type FetchFunc[T any] func(ctx context.Context, ident string) (T, error)

// IndexFunc lists every known identifier of a category as a name to id
// map. Supplied by the transport layer.
type IndexFunc func(ctx context.Context) (map[string]int, error)

// Resource is the category erased view of a ResourceCache, used by the
// endpoint cache to manage stores of different value types uniformly.
type Resource interface {
	Name() string
	Disable()
	Disabled() bool
	Len() int
	Keys() []string
	Index(ctx context.Context) (map[string]int, error)
	LoadAll(ctx context.Context) error
	Snapshot() ([]byte, error)
	Verify(data []byte) error
	Restore(data []byte) error
	Clear()
}

// ResourceCache is the read-through cache for one resource category. It
// is the single place that combines the store with the transport: probe
// first, fetch on miss, store the decoded result. Bulk loading reuses
// the same path per key.
type ResourceCache[T any] struct {
	name    string
	store   *Store[T]
	fetchFn FetchFunc[T]
	indexFn IndexFunc
	log     logr.Logger

	disabled bool

	idxMu sync.RWMutex
	idx   map[string]int
}

var _ Resource = (*ResourceCache[struct{}])(nil)

// NewResourceCache builds a cache for one category around the supplied
// transport collaborators.
func NewResourceCache[T any](name string, fetch FetchFunc[T], index IndexFunc, log logr.Logger) *ResourceCache[T] {
	return &ResourceCache[T]{
		name:    name,
		store:   NewStore[T](nil, nil),
		fetchFn: fetch,
		indexFn: index,
		log:     log.WithValues("category", name),
	}
}

// Name returns the category name, e.g. "berry-flavor".
func (c *ResourceCache[T]) Name() string { return c.name }

// Disable turns the cache into a pass-through: probes report absent,
// puts are dropped and bulk loading is refused. Must be called before
// the cache is shared between goroutines.
func (c *ResourceCache[T]) Disable() { c.disabled = true }

// Disabled reports whether caching is turned off for this category.
func (c *ResourceCache[T]) Disabled() bool { return c.disabled }

// Get probes the store by canonical key. No I/O, no side effects.
func (c *ResourceCache[T]) Get(key string) (T, bool) {
	if c.disabled {
		var zero T
		return zero, false
	}
	return c.store.Get(key)
}

// GetByID probes the store by numeric service id.
func (c *ResourceCache[T]) GetByID(id int) (T, bool) {
	if c.disabled {
		var zero T
		return zero, false
	}
	return c.store.GetByID(id)
}

// Put stores a fetched value under its canonical key. Dropped silently
// when the cache is disabled.
func (c *ResourceCache[T]) Put(v T) string {
	if c.disabled {
		return ""
	}
	return c.store.Put(v)
}

// Fetch is the read-through lookup: return the cached value when
// present, otherwise fetch, store and return it. With caching disabled
// every call goes to the network and nothing is stored.
func (c *ResourceCache[T]) Fetch(ctx context.Context, ident string) (T, error) {
	var zero T
	key := Canonicalize(ident)
	if key == "" {
		return zero, errors.Wrapf(ports.ErrConfiguration, "empty %s identifier", c.name)
	}
	if !c.disabled {
		if id, err := strconv.Atoi(key); err == nil {
			if v, ok := c.store.GetByID(id); ok {
				return v, nil
			}
		}
		if v, ok := c.store.Get(key); ok {
			return v, nil
		}
	}
	c.log.V(1).Info("cache miss", "ident", key)
	v, err := c.fetchFn(ctx, key)
	if err != nil {
		return zero, err
	}
	if !c.disabled {
		c.store.Put(v)
	}
	return v, nil
}

// Index returns the category's name to id map, fetching it once and
// memoizing. Disabled caches fetch on every call.
func (c *ResourceCache[T]) Index(ctx context.Context) (map[string]int, error) {
	if c.disabled {
		return c.indexFn(ctx)
	}
	c.idxMu.RLock()
	cached := c.idx
	c.idxMu.RUnlock()
	if cached == nil {
		fresh, err := c.indexFn(ctx)
		if err != nil {
			return nil, err
		}
		c.idxMu.Lock()
		if c.idx == nil {
			c.idx = fresh
		}
		cached = c.idx
		c.idxMu.Unlock()
	}
	out := make(map[string]int, len(cached))
	for k, v := range cached {
		out[k] = v
	}
	return out, nil
}

// LoadAll fetches every entry of the category that is not already
// cached, at most bulkConcurrency at a time. The first fetch failure
// cancels the remaining ones and is returned; entries fetched before
// the failure stay cached.
func (c *ResourceCache[T]) LoadAll(ctx context.Context) error {
	if c.disabled {
		return errors.Wrapf(ports.ErrConfiguration, "caching disabled for %s", c.name)
	}
	idx, err := c.Index(ctx)
	if err != nil {
		return err
	}
	missing := make([]string, 0, len(idx))
	for key := range idx {
		if !c.store.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Slice(missing, func(i, j int) bool { return idx[missing[i]] < idx[missing[j]] })
	c.log.V(1).Info("bulk load", "missing", len(missing), "known", len(idx))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(bulkConcurrency)
	for _, key := range missing {
		key := key // per-iteration copy; module originally targeted go >= 1.22 semantics
		eg.Go(func() error {
			_, err := c.Fetch(ctx, key)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrapf(err, "bulk load of %s aborted", c.name)
	}
	return nil
}

// Keys returns the cached keys in insertion order.
func (c *ResourceCache[T]) Keys() []string { return c.store.Keys() }

// Len returns the number of cached entries.
func (c *ResourceCache[T]) Len() int { return c.store.Len() }

// All returns every cached value in insertion order.
func (c *ResourceCache[T]) All() []T { return c.store.All() }

// Snapshot serializes the cached entries into the persisted envelope.
func (c *ResourceCache[T]) Snapshot() ([]byte, error) {
	return encodeSnapshot(c.name, c.store.All())
}

// Verify decodes a snapshot without applying it, so a multi file load
// can refuse a corrupt set before mutating any store.
func (c *ResourceCache[T]) Verify(data []byte) error {
	_, err := decodeSnapshot[T](c.name, data)
	return err
}

// Restore decodes a snapshot and upserts every entry. The decode is
// completed before the first put, so a malformed snapshot changes
// nothing.
func (c *ResourceCache[T]) Restore(data []byte) error {
	s, err := decodeSnapshot[T](c.name, data)
	if err != nil {
		return err
	}
	for _, v := range s.Entries {
		c.Put(v)
	}
	c.log.V(1).Info("restored snapshot", "entries", len(s.Entries))
	return nil
}

// Clear drops every cached entry and the memoized index.
func (c *ResourceCache[T]) Clear() {
	c.store.Clear()
	c.idxMu.Lock()
	c.idx = nil
	c.idxMu.Unlock()
}
