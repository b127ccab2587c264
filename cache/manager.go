package cache

import (
	"context"
	stderrors "errors"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
)

// Manager owns the fixed set of endpoint caches. The set is closed at
// construction, lookups of unknown group names fail instead of creating
// groups on the fly.
type Manager struct {
	log    logr.Logger
	order  []string
	groups map[string]*EndpointCache
}

// NewManager builds a manager over the given groups, preserving their
// order for fan out operations and stats.
func NewManager(log logr.Logger, groups ...*EndpointCache) *Manager {
	m := &Manager{
		log:    log,
		groups: make(map[string]*EndpointCache, len(groups)),
	}
	for _, g := range groups {
		m.order = append(m.order, g.Group())
		m.groups[g.Group()] = g
	}
	return m
}

// Endpoint looks up a group by name.
func (m *Manager) Endpoint(name string) (*EndpointCache, error) {
	g, ok := m.groups[name]
	if !ok {
		return nil, errors.Wrapf(ports.ErrConfiguration, "unknown endpoint group %q", name)
	}
	return g, nil
}

// Groups returns the owned group names in registration order.
func (m *Manager) Groups() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// resolve maps group names to caches. Empty names means every enabled
// group; explicit names may name disabled groups, whose operations then
// fail fast.
func (m *Manager) resolve(names []string) ([]*EndpointCache, error) {
	if len(names) == 0 {
		out := make([]*EndpointCache, 0, len(m.order))
		for _, name := range m.order {
			if g := m.groups[name]; g.Enabled() {
				out = append(out, g)
			}
		}
		return out, nil
	}
	out := make([]*EndpointCache, 0, len(names))
	for _, name := range names {
		g, err := m.Endpoint(name)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// SaveAll snapshots every enabled group into its own subdirectory of
// dir. A failing group is reported and skipped so one bad save does not
// block the rest; the failures come back joined.
func (m *Manager) SaveAll(dir string) error {
	var errs []error
	for _, name := range m.order {
		g := m.groups[name]
		if !g.Enabled() {
			continue
		}
		if err := g.Save(filepath.Join(dir, name)); err != nil {
			m.log.Error(err, "snapshot save failed", "group", name)
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// LoadAll restores every enabled group from its subdirectory of dir.
// Groups without a snapshot or with a corrupt one are reported and
// skipped, the rest restore normally; the failures come back joined.
func (m *Manager) LoadAll(dir string) error {
	var errs []error
	for _, name := range m.order {
		g := m.groups[name]
		if !g.Enabled() {
			continue
		}
		if err := g.Load(filepath.Join(dir, name)); err != nil {
			m.log.Error(err, "snapshot load failed", "group", name)
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Warm bulk loads the named groups, or every enabled group when no
// names are given. Groups are loaded one after another and a failing
// group does not stop the rest; the failures come back joined.
func (m *Manager) Warm(ctx context.Context, names ...string) error {
	targets, err := m.resolve(names)
	if err != nil {
		return err
	}
	var errs []error
	for _, g := range targets {
		if ctx.Err() != nil {
			errs = append(errs, errors.Wrap(ctx.Err(), "warm aborted"))
			break
		}
		if err := g.LoadAll(ctx); err != nil {
			m.log.Error(err, "bulk load failed", "group", g.Group())
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// WaitUntilReady blocks until the named groups, or every enabled group
// when no names are given, report ready. Fails fast without blocking
// when a named group has caching disabled.
func (m *Manager) WaitUntilReady(ctx context.Context, names ...string) error {
	targets, err := m.resolve(names)
	if err != nil {
		return err
	}
	for _, g := range targets {
		if !g.Enabled() {
			return errors.Wrapf(ports.ErrConfiguration, "caching disabled for group %s", g.Group())
		}
	}
	for _, g := range targets {
		if err := g.WaitUntilReady(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stats reports the cached entry count per category, keyed by group
// then category name.
func (m *Manager) Stats() map[string]map[string]int {
	out := make(map[string]map[string]int, len(m.order))
	for _, name := range m.order {
		g := m.groups[name]
		counts := make(map[string]int)
		for _, r := range g.Resources() {
			counts[r.Name()] = r.Len()
		}
		out[name] = counts
	}
	return out
}
