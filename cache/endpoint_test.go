package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
	"github.com/FallenDeity/PokeLance/ports"
)

type berryGroup struct {
	ep         *cache.EndpointCache
	berries    *fakeAPI[models.Berry]
	firmness   *fakeAPI[models.BerryFirmness]
	berryRC    *cache.ResourceCache[models.Berry]
	firmnessRC *cache.ResourceCache[models.BerryFirmness]
}

func buildBerryGroup(berries []models.Berry, firmness []models.BerryFirmness) *berryGroup {
	g := &berryGroup{
		berries:  newFakeAPI(berries...),
		firmness: newFakeAPI(firmness...),
	}
	g.berryRC = cache.NewResourceCache("berry", g.berries.fetch, g.berries.index, logr.Discard())
	g.firmnessRC = cache.NewResourceCache("berry-firmness", g.firmness.fetch, g.firmness.index, logr.Discard())
	g.ep = cache.NewEndpointCache("berry", logr.Discard(), g.berryRC, g.firmnessRC)
	return g
}

func newBerryGroup() *berryGroup {
	return buildBerryGroup(testBerries(), []models.BerryFirmness{
		{ID: 1, Name: "very-soft"},
		{ID: 2, Name: "soft"},
	})
}

func newEmptyBerryGroup() *berryGroup {
	return buildBerryGroup(nil, nil)
}

func TestEndpointAccessors(t *testing.T) {
	g := newBerryGroup()

	assert.Equal(t, "berry", g.ep.Group())
	assert.True(t, g.ep.Enabled())
	assert.False(t, g.ep.Ready())

	res := g.ep.Resources()
	require.Len(t, res, 2)
	assert.Equal(t, "berry", res[0].Name())
	assert.Equal(t, "berry-firmness", res[1].Name())

	r, ok := g.ep.Resource("berry-firmness")
	require.True(t, ok)
	assert.Equal(t, "berry-firmness", r.Name())
	_, ok = g.ep.Resource("item")
	assert.False(t, ok)
}

func TestEndpointLoadAllSetsReady(t *testing.T) {
	g := newBerryGroup()
	ctx := context.Background()

	require.NoError(t, g.ep.LoadAll(ctx))

	assert.True(t, g.ep.Ready())
	assert.Equal(t, 5, g.berryRC.Len())
	assert.Equal(t, 2, g.firmnessRC.Len())
	assert.NoError(t, g.ep.WaitUntilReady(ctx))

	require.NoError(t, g.ep.LoadAll(ctx))
	assert.Equal(t, 7, g.berries.totalCalls()+g.firmness.totalCalls())
}

func TestEndpointLoadAllCoalesces(t *testing.T) {
	g := newBerryGroup()
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	g.berries.onFetch = func() {
		once.Do(func() { close(started) })
		<-release
	}

	ctx := context.Background()
	results := make(chan error, 2)
	go func() { results <- g.ep.LoadAll(ctx) }()
	<-started
	go func() { results <- g.ep.LoadAll(ctx) }()
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-results)
	require.NoError(t, <-results)
	assert.True(t, g.ep.Ready())

	for _, b := range testBerries() {
		assert.Equal(t, 1, g.berries.callCount(b.Name), "berry %s fetched more than once", b.Name)
	}
	assert.Equal(t, 1, g.berries.idxHits, "coalesced load must not re-index")
}

func TestEndpointLoadAllAbortsOnFailure(t *testing.T) {
	g := newBerryGroup()
	g.berries.setFail("pecha", errors.Wrap(ports.ErrNetwork, "connection reset"))
	ctx := context.Background()

	err := g.ep.LoadAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrNetwork))
	assert.False(t, g.ep.Ready())
	assert.Equal(t, 4, g.berryRC.Len(), "entries fetched before the failure stay cached")
	assert.Equal(t, 0, g.firmnessRC.Len(), "later categories must not load after an abort")

	g.berries.setFail("pecha", nil)
	require.NoError(t, g.ep.LoadAll(ctx))
	assert.True(t, g.ep.Ready())
	assert.Equal(t, 1, g.berries.callCount("cheri"), "retry must not refetch cached entries")
}

func TestEndpointWaitUntilReadyBlocks(t *testing.T) {
	g := newBerryGroup()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.ep.WaitUntilReady(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("wait returned before any bulk load: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, g.ep.LoadAll(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter not released after bulk load")
	}
}

func TestEndpointWaitUntilReadyContextExpires(t *testing.T) {
	g := newBerryGroup()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := g.ep.WaitUntilReady(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestEndpointDisabled(t *testing.T) {
	g := newBerryGroup()
	g.ep.Disable()

	assert.False(t, g.ep.Enabled())
	assert.True(t, g.berryRC.Disabled())
	assert.True(t, g.firmnessRC.Disabled())

	err := g.ep.LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))

	err = g.ep.WaitUntilReady(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))
}

func TestEndpointMarkReadyAndReset(t *testing.T) {
	g := newBerryGroup()
	ctx := context.Background()

	_, err := g.berryRC.Fetch(ctx, "cheri")
	require.NoError(t, err)

	g.ep.MarkReady()
	assert.True(t, g.ep.Ready())
	assert.NoError(t, g.ep.WaitUntilReady(ctx))

	g.ep.Reset()
	assert.False(t, g.ep.Ready())
	assert.Equal(t, 0, g.berryRC.Len())

	short, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	require.Error(t, g.ep.WaitUntilReady(short))

	require.NoError(t, g.ep.LoadAll(ctx))
	assert.True(t, g.ep.Ready())
	assert.NoError(t, g.ep.WaitUntilReady(ctx))
}

func TestEndpointSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "berry")
	g := newBerryGroup()
	ctx := context.Background()

	require.NoError(t, g.ep.LoadAll(ctx))
	require.NoError(t, g.ep.Save(dir))

	for _, name := range []string{"berry.json", "berry-firmness.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}

	fresh := newEmptyBerryGroup()
	require.NoError(t, fresh.ep.Load(dir))

	v, ok := fresh.berryRC.Get("cheri")
	require.True(t, ok)
	assert.Equal(t, 20, v.Size)
	chesto, ok := fresh.berryRC.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, "chesto", chesto.Name)
	assert.Equal(t, 2, fresh.firmnessRC.Len())

	assert.False(t, fresh.ep.Ready(), "a loaded snapshot is not verified complete")
	fresh.ep.MarkReady()
	assert.NoError(t, fresh.ep.WaitUntilReady(ctx))
}

func TestEndpointLoadMissingDir(t *testing.T) {
	g := newEmptyBerryGroup()

	err := g.ep.Load(filepath.Join(t.TempDir(), "nowhere"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestEndpointLoadCorruptSetChangesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "berry")
	g := newBerryGroup()
	ctx := context.Background()

	require.NoError(t, g.ep.LoadAll(ctx))
	require.NoError(t, g.ep.Save(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "berry-firmness.json"), []byte("{"), 0o644))

	fresh := newEmptyBerryGroup()
	err := fresh.ep.Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrDecode))
	assert.Equal(t, 0, fresh.berryRC.Len(), "a corrupt set must not be partially restored")
	assert.Equal(t, 0, fresh.firmnessRC.Len())
}

func TestEndpointLoadSkipsMissingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "berry")
	g := newBerryGroup()
	ctx := context.Background()

	require.NoError(t, g.ep.LoadAll(ctx))
	require.NoError(t, g.ep.Save(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "berry-firmness.json")))

	fresh := newEmptyBerryGroup()
	require.NoError(t, fresh.ep.Load(dir))
	assert.Equal(t, 5, fresh.berryRC.Len())
	assert.Equal(t, 0, fresh.firmnessRC.Len())
}
