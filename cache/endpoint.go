package cache

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
)

// flight tracks one in-progress bulk load so concurrent callers share
// its outcome instead of duplicating network work.
type flight struct {
	done chan struct{}
	err  error
}

// EndpointCache owns the resource caches of one logical endpoint group
// and the group's readiness state. Readiness means a bulk load completed
// for every owned category; loading a snapshot alone never sets it.
type EndpointCache struct {
	group     string
	resources []Resource
	byName    map[string]Resource
	log       logr.Logger

	mu       sync.Mutex
	disabled bool
	ready    bool
	readyCh  chan struct{}
	loading  *flight
}

// NewEndpointCache builds the cache for one group over its category
// caches. The resource order is preserved for saves and stats.
func NewEndpointCache(group string, log logr.Logger, resources ...Resource) *EndpointCache {
	byName := make(map[string]Resource, len(resources))
	for _, r := range resources {
		byName[r.Name()] = r
	}
	return &EndpointCache{
		group:     group,
		resources: resources,
		byName:    byName,
		log:       log.WithValues("group", group),
		readyCh:   make(chan struct{}),
	}
}

// Group returns the endpoint group name, e.g. "berry".
func (e *EndpointCache) Group() string { return e.group }

// Resources returns the owned category caches in registration order.
func (e *EndpointCache) Resources() []Resource {
	out := make([]Resource, len(e.resources))
	copy(out, e.resources)
	return out
}

// Resource looks up one owned category cache by name.
func (e *EndpointCache) Resource(name string) (Resource, bool) {
	r, ok := e.byName[name]
	return r, ok
}

// Disable turns off caching for the whole group, cascading to every
// owned category. Must be called before the cache is shared.
func (e *EndpointCache) Disable() {
	e.mu.Lock()
	e.disabled = true
	e.mu.Unlock()
	for _, r := range e.resources {
		r.Disable()
	}
}

// Enabled reports whether caching is on for this group.
func (e *EndpointCache) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.disabled
}

// Ready reports whether a bulk load has completed for every owned
// category since the last Reset.
func (e *EndpointCache) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// MarkReady declares the current contents complete, e.g. after loading
// a snapshot the caller knows covers every entry. Unblocks waiters.
func (e *EndpointCache) MarkReady() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		e.ready = true
		close(e.readyCh)
	}
}

// Reset drops every cached entry and clears readiness. Waiters blocked
// on the old readiness stay blocked until the next bulk load.
func (e *EndpointCache) Reset() {
	e.mu.Lock()
	if e.ready {
		e.readyCh = make(chan struct{})
		e.ready = false
	}
	e.mu.Unlock()
	for _, r := range e.resources {
		r.Clear()
	}
}

// LoadAll bulk loads every owned category and sets readiness on full
// success. Concurrent calls coalesce: at most one load runs, later
// callers wait for it and share its result. A failure aborts the load,
// keeps the entries fetched so far and leaves readiness unset.
func (e *EndpointCache) LoadAll(ctx context.Context) error {
	e.mu.Lock()
	if e.disabled {
		e.mu.Unlock()
		return errors.Wrapf(ports.ErrConfiguration, "caching disabled for group %s", e.group)
	}
	if e.ready {
		e.mu.Unlock()
		return nil
	}
	if f := e.loading; f != nil {
		e.mu.Unlock()
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "waiting for in-flight %s load", e.group)
		}
	}
	f := &flight{done: make(chan struct{})}
	e.loading = f
	e.mu.Unlock()

	e.log.V(1).Info("bulk load started", "categories", len(e.resources))
	var err error
	for _, r := range e.resources {
		if err = r.LoadAll(ctx); err != nil {
			err = errors.Wrapf(err, "group %s", e.group)
			break
		}
	}

	e.mu.Lock()
	f.err = err
	e.loading = nil
	if err == nil && !e.ready {
		e.ready = true
		close(e.readyCh)
	}
	e.mu.Unlock()
	close(f.done)
	return err
}

// WaitUntilReady blocks until the group becomes ready or the context
// ends. Returns immediately when already ready and fails fast with a
// configuration error when caching is disabled for the group.
func (e *EndpointCache) WaitUntilReady(ctx context.Context) error {
	e.mu.Lock()
	if e.disabled {
		e.mu.Unlock()
		return errors.Wrapf(ports.ErrConfiguration, "caching disabled for group %s", e.group)
	}
	ch := e.readyCh
	e.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "waiting for group %s", e.group)
	}
}

// Save writes one snapshot file per owned category into dir, creating
// it if needed. Cache state is not touched. Callers must not issue
// concurrent saves to the same dir.
func (e *EndpointCache) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(ports.ErrIO, "failed to create snapshot dir %s: %v", dir, err)
	}
	for _, r := range e.resources {
		data, err := r.Snapshot()
		if err != nil {
			return errors.Wrapf(err, "failed to snapshot %s", r.Name())
		}
		path := filepath.Join(dir, r.Name()+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrapf(ports.ErrIO, "failed to write %s: %v", path, err)
		}
	}
	e.log.V(1).Info("saved snapshots", "dir", dir, "stores", len(e.resources))
	return nil
}

// Load reads the group's snapshot files from dir and restores them.
// Every present file is decoded before the first store is touched, so a
// corrupt set changes nothing. Missing individual files are skipped; a
// missing dir or an empty set is a not found error. Readiness is not
// set, the caller declares it via MarkReady when the snapshot is known
// complete.
func (e *EndpointCache) Load(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ports.ErrNotFound, "no snapshot at %s", dir)
		}
		return errors.Wrapf(ports.ErrIO, "failed to stat %s: %v", dir, err)
	}
	type staged struct {
		res  Resource
		data []byte
	}
	var found []staged
	for _, r := range e.resources {
		path := filepath.Join(dir, r.Name()+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(ports.ErrIO, "failed to read %s: %v", path, err)
		}
		if err := r.Verify(data); err != nil {
			return errors.Wrapf(err, "invalid snapshot %s", path)
		}
		found = append(found, staged{res: r, data: data})
	}
	if len(found) == 0 {
		return errors.Wrapf(ports.ErrNotFound, "no %s snapshots under %s", e.group, dir)
	}
	for _, s := range found {
		if err := s.res.Restore(s.data); err != nil {
			return errors.Wrapf(err, "failed to restore %s", s.res.Name())
		}
	}
	e.log.V(1).Info("loaded snapshots", "dir", dir, "stores", len(found))
	return nil
}
