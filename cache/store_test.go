package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cheri", "cheri"},
		{"  Mr Mime  ", "mr-mime"},
		{"pokemon-species", "pokemon-species"},
		{"25", "25"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cache.Canonicalize(tt.in))
	}
}

func TestStorePutOverwrites(t *testing.T) {
	s := cache.NewStore[models.Berry](nil, nil)

	key := s.Put(models.Berry{ID: 1, Name: "cheri", Size: 20})
	assert.Equal(t, "cheri", key)
	s.Put(models.Berry{ID: 2, Name: "chesto", Size: 80})
	assert.Equal(t, 2, s.Len())

	s.Put(models.Berry{ID: 1, Name: "cheri", Size: 99})
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get("cheri")
	require.True(t, ok)
	assert.Equal(t, 99, v.Size)
	assert.Equal(t, []string{"cheri", "chesto"}, s.Keys())
}

func TestStoreLookups(t *testing.T) {
	s := cache.NewStore[models.Berry](nil, nil)
	s.Put(models.Berry{ID: 1, Name: "cheri"})

	v, ok := s.Get("CHERI")
	require.True(t, ok)
	assert.Equal(t, 1, v.ID)

	v, ok = s.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "cheri", v.Name)

	_, ok = s.Get("chesto")
	assert.False(t, ok)
	_, ok = s.GetByID(42)
	assert.False(t, ok)
	assert.True(t, s.Has("cheri"))
	assert.False(t, s.Has("chesto"))
}

func TestStoreIDKeyFallback(t *testing.T) {
	s := cache.NewStore[models.Machine](nil, nil)

	key := s.Put(models.Machine{ID: 7})
	assert.Equal(t, "7", key)

	v, ok := s.Get("7")
	require.True(t, ok)
	assert.Equal(t, 7, v.ID)
	v, ok = s.GetByID(7)
	require.True(t, ok)
	assert.Equal(t, 7, v.ID)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := cache.NewStore[models.Berry](nil, nil)
	s.Put(models.Berry{ID: 1, Name: "cheri", Size: 20})

	v, ok := s.Get("cheri")
	require.True(t, ok)
	v.Size = 999

	again, ok := s.Get("cheri")
	require.True(t, ok)
	assert.Equal(t, 20, again.Size)
}

func TestStoreAllSnapshot(t *testing.T) {
	s := cache.NewStore[models.Berry](nil, nil)
	s.Put(models.Berry{ID: 1, Name: "cheri"})
	s.Put(models.Berry{ID: 2, Name: "chesto"})

	all := s.All()
	s.Put(models.Berry{ID: 3, Name: "pecha"})

	require.Len(t, all, 2)
	assert.Equal(t, "cheri", all[0].Name)
	assert.Equal(t, "chesto", all[1].Name)
	assert.Equal(t, 3, s.Len())
}

func TestStoreClear(t *testing.T) {
	s := cache.NewStore[models.Berry](nil, nil)
	s.Put(models.Berry{ID: 1, Name: "cheri"})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
	_, ok := s.GetByID(1)
	assert.False(t, ok)
}
