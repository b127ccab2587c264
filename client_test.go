package pokelance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pokelance "github.com/FallenDeity/PokeLance"
	"github.com/FallenDeity/PokeLance/models"
	"github.com/FallenDeity/PokeLance/ports"
)

// fakeTransport serves canned payloads and counts hits per route.
type fakeTransport struct {
	mu        sync.Mutex
	resources map[string]map[string]string
	indexes   map[string]map[string]int
	media     map[string][]byte
	calls     map[string]int
	mediaHits map[string]int
	closed    bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		resources: make(map[string]map[string]string),
		indexes:   make(map[string]map[string]int),
		media:     make(map[string][]byte),
		calls:     make(map[string]int),
		mediaHits: make(map[string]int),
	}
}

func (f *fakeTransport) add(category, ident string, id int, payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resources[category] == nil {
		f.resources[category] = make(map[string]string)
		f.indexes[category] = make(map[string]int)
	}
	f.resources[category][ident] = payload
	f.indexes[category][ident] = id
}

func (f *fakeTransport) Resource(_ context.Context, category, ident string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[category+"/"+ident]++
	payload, ok := f.resources[category][ident]
	if !ok {
		return nil, errors.Wrapf(ports.ErrNotFound, "%s/%s", category, ident)
	}
	return []byte(payload), nil
}

func (f *fakeTransport) Index(_ context.Context, category string) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int, len(f.indexes[category]))
	for k, v := range f.indexes[category] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeTransport) Bytes(_ context.Context, rawURL string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mediaHits[rawURL]++
	data, ok := f.media[rawURL]
	if !ok {
		return nil, errors.Wrapf(ports.ErrNotFound, "%s", rawURL)
	}
	return data, nil
}

func (f *fakeTransport) Ping(context.Context) (time.Duration, error) {
	return 5 * time.Millisecond, nil
}

func (f *fakeTransport) CloseIdleConnections() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeTransport) callCount(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

func newTestClient(t *testing.T, cfg *pokelance.Config) (*pokelance.Client, *fakeTransport) {
	t.Helper()
	ft := newFakeTransport()
	ft.add("berry", "cheri", 1, `{"id":1,"name":"cheri","size":20}`)
	ft.add("berry", "chesto", 2, `{"id":2,"name":"chesto","size":80}`)
	ft.add("berry", "pecha", 3, `{"id":3,"name":"pecha","size":40}`)
	ft.add("machine", "1", 1, `{"id":1}`)
	ft.add("machine", "2", 2, `{"id":2}`)
	ft.add("pokemon-species", "25", 25, `{"id":25,"name":"pikachu"}`)

	c, err := pokelance.New(cfg, pokelance.WithTransport(ft))
	require.NoError(t, err)
	return c, ft
}

func TestClientReadThrough(t *testing.T) {
	c, ft := newTestClient(t, nil)
	ctx := context.Background()

	b, err := c.Berry.Berry(ctx, "cheri")
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 20, b.Size)

	b, err = c.Berry.Berry(ctx, "cheri")
	require.NoError(t, err)
	assert.Equal(t, "cheri", b.Name)
	assert.Equal(t, 1, ft.callCount("berry/cheri"), "second lookup must hit the cache")
}

func TestClientNotFoundSuggestions(t *testing.T) {
	c, _ := newTestClient(t, nil)

	_, err := c.Berry.Berry(context.Background(), "chery")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrNotFound))

	var nf *pokelance.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "berry", nf.Resource)
	assert.Equal(t, "chery", nf.Key)
	assert.Contains(t, nf.Suggestions, "cheri")
}

func TestClientDecodeFailure(t *testing.T) {
	c, ft := newTestClient(t, nil)
	ft.add("berry", "broken", 9, `{"id":"not a number"}`)

	_, err := c.Berry.Berry(context.Background(), "broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrDecode))
}

func TestClientWarmAndWait(t *testing.T) {
	c, ft := newTestClient(t, nil)
	ctx := context.Background()

	require.NoError(t, c.Warm(ctx, "machine"))
	require.NoError(t, c.WaitUntilReady(ctx, "machine"))
	assert.Equal(t, 1, ft.callCount("machine/1"))
	assert.Equal(t, 1, ft.callCount("machine/2"))

	m, err := c.Machine.Machine(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, 1, ft.callCount("machine/1"), "warm entries must be served from cache")

	stats := c.Cache().Stats()
	assert.Equal(t, 2, stats["machine"]["machine"])
}

func TestClientDisabledGroup(t *testing.T) {
	cfg := pokelance.DefaultConfig()
	cfg.Cache.DisabledGroups = []string{"machine"}
	c, ft := newTestClient(t, cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		m, err := c.Machine.Machine(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 1, m.ID)
	}
	assert.Equal(t, 2, ft.callCount("machine/1"), "disabled groups always go to the network")

	err := c.Warm(ctx, "machine")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrConfiguration))

	err = c.WaitUntilReady(ctx, "machine")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrConfiguration))

	require.NoError(t, c.Warm(ctx), "warming everything skips disabled groups")
}

func TestClientSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, ft := newTestClient(t, nil)
	ctx := context.Background()

	require.NoError(t, c.Warm(ctx, "machine"))
	require.NoError(t, c.SaveAll(dir))

	fresh, err := pokelance.New(nil, pokelance.WithTransport(ft))
	require.NoError(t, err)
	require.NoError(t, fresh.LoadAll(dir))

	m, ferr := fresh.Machine.Machine(ctx, "2")
	require.NoError(t, ferr)
	assert.Equal(t, 2, m.ID)
	assert.Equal(t, 1, ft.callCount("machine/2"), "restored entries must be served from cache")

	ep, err := fresh.Cache().Endpoint("machine")
	require.NoError(t, err)
	assert.False(t, ep.Ready(), "a restored snapshot is not verified complete")
}

func TestClientCloseSavesWhenConfigured(t *testing.T) {
	cfg := pokelance.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "snapshots")
	cfg.Cache.SaveOnClose = true
	c, ft := newTestClient(t, cfg)

	_, err := c.Berry.Berry(context.Background(), "cheri")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = os.Stat(filepath.Join(cfg.Cache.Dir, "berry", "berry.json"))
	assert.NoError(t, err)
	assert.True(t, ft.closed)
}

func TestClientMediaCache(t *testing.T) {
	c, ft := newTestClient(t, nil)
	url := "https://raw.example/sprites/25.png"
	ft.media[url] = []byte{0x89, 0x50}
	ctx := context.Background()

	data, err := c.Sprite(ctx, url)
	require.NoError(t, err)
	data[0] = 0x00

	again, err := c.Sprite(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, again, "cached media must not alias caller slices")
	assert.Equal(t, 1, ft.mediaHits[url])
}

func TestClientFromURL(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	v, err := c.FromURL(ctx, "https://pokeapi.co/api/v2/pokemon-species/25/")
	require.NoError(t, err)
	species, ok := v.(*models.PokemonSpecies)
	require.True(t, ok)
	assert.Equal(t, "pikachu", species.Name)

	_, err = c.FromURL(ctx, "https://pokeapi.co/api/v2/berries/1/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrConfiguration))
}

func TestClientLookupUnknownCategory(t *testing.T) {
	c, _ := newTestClient(t, nil)

	_, err := c.Lookup(context.Background(), "berries", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrConfiguration))
}

func TestClientPing(t *testing.T) {
	c, _ := newTestClient(t, nil)

	rtt, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, rtt)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := pokelance.DefaultConfig()
	cfg.API.RateLimit = -1

	_, err := pokelance.New(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokelance.ErrConfiguration))
}

func TestClientAgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/berry/cheri":
			_, _ = w.Write([]byte(`{"id":1,"name":"cheri","size":20}`))
		default:
			http.Error(w, "Not Found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := pokelance.DefaultConfig()
	cfg.API.BaseURL = srv.URL
	cfg.API.RateLimit = 1000
	cfg.API.RateBurst = 100
	c, err := pokelance.New(cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	b, err := c.Berry.Berry(context.Background(), "cheri")
	require.NoError(t, err)
	assert.Equal(t, "cheri", b.Name)
	assert.Equal(t, 20, b.Size)
}
