// Package pokelance is a typed Go client for the PokéAPI REST service.
//
// Every lookup goes through a per category read-through cache: probe
// first, fetch and decode on a miss, remember the result. Categories
// are grouped into the service's endpoint groups, which can be bulk
// loaded ahead of time, persisted to disk and restored, and waited on
// until fully loaded.
package pokelance

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/ports"
	"github.com/FallenDeity/PokeLance/rest"
)

// Transport is the single HTTP capability the client consumes.
// *rest.Client implements it; tests substitute fakes.
type Transport interface {
	Resource(ctx context.Context, category, ident string) ([]byte, error)
	Index(ctx context.Context, category string) (map[string]int, error)
	Bytes(ctx context.Context, rawURL string) ([]byte, error)
	Ping(ctx context.Context) (time.Duration, error)
	CloseIdleConnections()
}

var _ Transport = (*rest.Client)(nil)

// Client is the entry point. Construct one with New, share it freely
// between goroutines and release it with Close.
type Client struct {
	cfg        *Config
	log        logr.Logger
	transport  Transport
	httpClient *http.Client
	manager    *cache.Manager
	media      *mediaCache

	Berry     *BerryGroup
	Contest   *ContestGroup
	Encounter *EncounterGroup
	Evolution *EvolutionGroup
	Game      *GameGroup
	Item      *ItemGroup
	Location  *LocationGroup
	Machine   *MachineGroup
	Move      *MoveGroup
	Pokemon   *PokemonGroup
}

// Option customizes client construction.
type Option func(*Client)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithHTTPClient hands a custom *http.Client to the default transport.
// Ignored when combined with WithTransport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client from cfg, nil meaning defaults.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{cfg: cfg, log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		ropts := []rest.Option{rest.WithLogger(c.log)}
		if c.httpClient != nil {
			ropts = append(ropts, rest.WithHTTPClient(c.httpClient))
		}
		t, err := rest.NewClient(cfg.restConfig(), ropts...)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}
	media, err := newMediaCache(cfg.Cache.MediaCacheSize)
	if err != nil {
		return nil, err
	}
	c.media = media

	c.Berry = newBerryGroup(c)
	c.Contest = newContestGroup(c)
	c.Encounter = newEncounterGroup(c)
	c.Evolution = newEvolutionGroup(c)
	c.Game = newGameGroup(c)
	c.Item = newItemGroup(c)
	c.Location = newLocationGroup(c)
	c.Machine = newMachineGroup(c)
	c.Move = newMoveGroup(c)
	c.Pokemon = newPokemonGroup(c)

	groups := []*cache.EndpointCache{
		c.Berry.ep, c.Contest.ep, c.Encounter.ep, c.Evolution.ep, c.Game.ep,
		c.Item.ep, c.Location.ep, c.Machine.ep, c.Move.ep, c.Pokemon.ep,
	}
	disabled := make(map[string]bool, len(cfg.Cache.DisabledGroups))
	for _, name := range cfg.Cache.DisabledGroups {
		disabled[cache.Canonicalize(name)] = true
	}
	for _, g := range groups {
		if disabled[g.Group()] {
			g.Disable()
		}
	}
	c.manager = cache.NewManager(c.log, groups...)
	c.log.V(1).Info("client ready", "groups", len(groups), "disabled", len(cfg.Cache.DisabledGroups))
	return c, nil
}

// Cache exposes the cache manager for stats, readiness and per group
// access.
func (c *Client) Cache() *cache.Manager { return c.manager }

// Ping measures one round trip to the service.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	return c.transport.Ping(ctx)
}

// Warm bulk loads the named endpoint groups, or every enabled group
// when none are named.
func (c *Client) Warm(ctx context.Context, groups ...string) error {
	return c.manager.Warm(ctx, groups...)
}

// WaitUntilReady blocks until the named groups, or every enabled group,
// finish a bulk load.
func (c *Client) WaitUntilReady(ctx context.Context, groups ...string) error {
	return c.manager.WaitUntilReady(ctx, groups...)
}

// SaveAll snapshots every enabled group under dir. An empty dir means
// the configured cache directory.
func (c *Client) SaveAll(dir string) error {
	if dir == "" {
		dir = c.cfg.Cache.Dir
	}
	return c.manager.SaveAll(dir)
}

// LoadAll restores every enabled group from dir. An empty dir means
// the configured cache directory. Readiness stays unset, snapshots are
// not verified complete.
func (c *Client) LoadAll(dir string) error {
	if dir == "" {
		dir = c.cfg.Cache.Dir
	}
	return c.manager.LoadAll(dir)
}

// Index lists every known identifier of a category mapped to its
// numeric id. Unnamed categories key by decimal id.
func (c *Client) Index(ctx context.Context, category string) (map[string]int, error) {
	return c.transport.Index(ctx, category)
}

// Sprite fetches a sprite image by absolute URL through the media
// cache.
func (c *Client) Sprite(ctx context.Context, rawURL string) ([]byte, error) {
	return c.media.get(ctx, c.transport, rawURL)
}

// Cry fetches a cry audio clip by absolute URL through the media
// cache.
func (c *Client) Cry(ctx context.Context, rawURL string) ([]byte, error) {
	return c.media.get(ctx, c.transport, rawURL)
}

// Close releases transport resources, saving every enabled cache first
// when the configuration asks for it.
func (c *Client) Close() error {
	var err error
	if c.cfg.Cache.SaveOnClose {
		err = c.SaveAll("")
	}
	c.transport.CloseIdleConnections()
	return err
}

// newResource wires one category cache to the transport and its JSON
// decoder.
func newResource[T any](c *Client, category string) *cache.ResourceCache[T] {
	fetch := func(ctx context.Context, ident string) (T, error) {
		var v T
		raw, err := c.transport.Resource(ctx, category, ident)
		if err != nil {
			return v, err
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return v, errors.Wrapf(ports.ErrDecode, "failed to decode %s %q: %v", category, ident, err)
		}
		return v, nil
	}
	index := func(ctx context.Context) (map[string]int, error) {
		return c.transport.Index(ctx, category)
	}
	return cache.NewResourceCache(category, fetch, index, c.log)
}

// fetchOne is the shared read-through behind every group method. A miss
// that turns out not to exist comes back as a NotFoundError carrying
// close name suggestions from the category index.
func fetchOne[T any](ctx context.Context, rc *cache.ResourceCache[T], ident string) (*T, error) {
	v, err := rc.Fetch(ctx, ident)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			nf := &ports.NotFoundError{Resource: rc.Name(), Key: cache.Canonicalize(ident)}
			if idx, ierr := rc.Index(ctx); ierr == nil {
				names := make([]string, 0, len(idx))
				for name := range idx {
					names = append(names, name)
				}
				nf.Suggestions = Closest(nf.Key, names, 3)
			}
			return nil, nf
		}
		return nil, err
	}
	out := v
	return &out, nil
}
