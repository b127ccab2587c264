package pokelance

import "sort"

// suggestCutoff is the similarity below which a candidate is not worth
// suggesting.
const suggestCutoff = 0.6

// Closest returns up to n candidates ranked by similarity to target,
// dropping anything below the cutoff. Ties break alphabetically so the
// result is stable.
func Closest(target string, candidates []string, n int) []string {
	if n <= 0 || target == "" {
		return nil
	}
	type scored struct {
		name  string
		ratio float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if r := similarity(target, cand); r >= suggestCutoff {
			ranked = append(ranked, scored{name: cand, ratio: r})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ratio != ranked[j].ratio {
			return ranked[i].ratio > ranked[j].ratio
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

// similarity is 1 minus the normalized edit distance.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(longest)
}

// editDistance is the two row Levenshtein distance over bytes. Service
// names are ASCII, so bytes and runes coincide.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
