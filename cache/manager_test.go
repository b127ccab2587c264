package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
	"github.com/FallenDeity/PokeLance/ports"
)

// managerFixture wires a manager with an enabled berry group, an enabled
// machine group and a disabled contest group.
type managerFixture struct {
	m          *cache.Manager
	berry      *berryGroup
	machines   *fakeAPI[models.Machine]
	machRC     *cache.ResourceCache[models.Machine]
	machEP     *cache.EndpointCache
	contestAPI *fakeAPI[models.ContestType]
	contestEP  *cache.EndpointCache
}

func newManagerFixture() *managerFixture {
	f := &managerFixture{berry: newBerryGroup()}

	f.machines = newFakeAPI(models.Machine{ID: 1}, models.Machine{ID: 2})
	f.machRC = cache.NewResourceCache("machine", f.machines.fetch, f.machines.index, logr.Discard())
	f.machEP = cache.NewEndpointCache("machine", logr.Discard(), f.machRC)

	f.contestAPI = newFakeAPI(models.ContestType{ID: 1, Name: "cool"})
	contestRC := cache.NewResourceCache("contest-type", f.contestAPI.fetch, f.contestAPI.index, logr.Discard())
	f.contestEP = cache.NewEndpointCache("contest", logr.Discard(), contestRC)
	f.contestEP.Disable()

	f.m = cache.NewManager(logr.Discard(), f.berry.ep, f.machEP, f.contestEP)
	return f
}

func TestManagerEndpointLookup(t *testing.T) {
	f := newManagerFixture()

	g, err := f.m.Endpoint("machine")
	require.NoError(t, err)
	assert.Equal(t, "machine", g.Group())

	_, err = f.m.Endpoint("berries")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))

	assert.Equal(t, []string{"berry", "machine", "contest"}, f.m.Groups())
}

func TestManagerWarmAllEnabled(t *testing.T) {
	f := newManagerFixture()

	require.NoError(t, f.m.Warm(context.Background()))

	assert.True(t, f.berry.ep.Ready())
	assert.True(t, f.machEP.Ready())
	assert.False(t, f.contestEP.Ready())
	assert.Equal(t, 0, f.contestAPI.totalCalls(), "disabled groups must not be warmed")
}

func TestManagerWarmSubset(t *testing.T) {
	f := newManagerFixture()

	require.NoError(t, f.m.Warm(context.Background(), "machine"))

	assert.True(t, f.machEP.Ready())
	assert.False(t, f.berry.ep.Ready())
	assert.Equal(t, 0, f.berry.berries.totalCalls())
}

func TestManagerWarmUnknownGroup(t *testing.T) {
	f := newManagerFixture()

	err := f.m.Warm(context.Background(), "berries")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))
}

func TestManagerWarmDisabledGroupByName(t *testing.T) {
	f := newManagerFixture()

	err := f.m.Warm(context.Background(), "contest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))
}

func TestManagerWarmContinuesPastFailure(t *testing.T) {
	f := newManagerFixture()
	f.berry.berries.setFail("cheri", errors.Wrap(ports.ErrNetwork, "connection reset"))

	err := f.m.Warm(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrNetwork))
	assert.False(t, f.berry.ep.Ready())
	assert.True(t, f.machEP.Ready(), "a failing group must not block the rest")
}

func TestManagerSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := newManagerFixture()
	require.NoError(t, f.m.Warm(context.Background()))

	require.NoError(t, f.m.SaveAll(dir))
	_, err := os.Stat(filepath.Join(dir, "berry", "berry.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "machine", "machine.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "contest"))
	assert.True(t, os.IsNotExist(err), "disabled groups must not be saved")

	fresh := newManagerFixture()
	require.NoError(t, fresh.m.LoadAll(dir))

	v, ok := fresh.berry.berryRC.Get("cheri")
	require.True(t, ok)
	assert.Equal(t, 20, v.Size)
	m, ok := fresh.machRC.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, 2, m.ID)
	assert.False(t, fresh.berry.ep.Ready())
	assert.False(t, fresh.machEP.Ready())
}

func TestManagerLoadAllAggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	f := newManagerFixture()
	require.NoError(t, f.m.Warm(context.Background()))
	require.NoError(t, f.m.SaveAll(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "machine", "machine.json"), []byte("{"), 0o644))

	fresh := newManagerFixture()
	err := fresh.m.LoadAll(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrDecode))
	assert.Equal(t, 5, fresh.berry.berryRC.Len(), "one corrupt snapshot must not block the rest")
	assert.Equal(t, 0, fresh.machRC.Len())
}

func TestManagerLoadAllNothingSaved(t *testing.T) {
	f := newManagerFixture()

	err := f.m.LoadAll(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestManagerWaitUntilReady(t *testing.T) {
	f := newManagerFixture()
	ctx := context.Background()

	require.NoError(t, f.m.Warm(ctx))
	assert.NoError(t, f.m.WaitUntilReady(ctx))
	assert.NoError(t, f.m.WaitUntilReady(ctx, "berry", "machine"))

	err := f.m.WaitUntilReady(ctx, "contest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))

	err = f.m.WaitUntilReady(ctx, "berries")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConfiguration))
}

func TestManagerStats(t *testing.T) {
	f := newManagerFixture()
	require.NoError(t, f.m.Warm(context.Background()))

	stats := f.m.Stats()
	assert.Equal(t, 5, stats["berry"]["berry"])
	assert.Equal(t, 2, stats["berry"]["berry-firmness"])
	assert.Equal(t, 2, stats["machine"]["machine"])
	assert.Equal(t, 0, stats["contest"]["contest-type"])
}
