package pokelance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pokelance "github.com/FallenDeity/PokeLance"
)

func TestClosest(t *testing.T) {
	candidates := []string{"cheri", "chesto", "pecha", "rawst", "aspear", "leppa", "oran"}

	assert.Equal(t, []string{"cheri"}, pokelance.Closest("chery", candidates, 3))
	assert.Equal(t, []string{"pecha"}, pokelance.Closest("pecha", candidates, 3))
	assert.Empty(t, pokelance.Closest("zzzzzz", candidates, 3))
	assert.Empty(t, pokelance.Closest("", candidates, 3))
	assert.Empty(t, pokelance.Closest("cheri", candidates, 0))
}

func TestClosestRankingAndLimit(t *testing.T) {
	candidates := []string{"stat", "start", "state", "untouched"}

	got := pokelance.Closest("stat", candidates, 2)
	assert.Equal(t, []string{"stat", "start"}, got, "exact match first, then by similarity")

	got = pokelance.Closest("stat", candidates, 10)
	assert.Equal(t, []string{"stat", "start", "state"}, got)
}

func TestClosestStableTieBreak(t *testing.T) {
	got := pokelance.Closest("abcd", []string{"abce", "abcf"}, 2)
	assert.Equal(t, []string{"abce", "abcf"}, got)
}
