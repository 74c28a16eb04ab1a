package enumerate

import (
	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// Combinations returns every k-element selection of pool positions, in
// pool order. k < 0 or k > len(pool) yields no selections; k == 0
// yields the single empty selection.
func Combinations[T any](pool []T, k int, options ...engine.Option) [][]T {
	if k < 0 || k > len(pool) {
		return [][]T{}
	}
	pool = append([]T(nil), pool...)
	return run(backtrack.Problem[T]{
		Size:    len(pool),
		Element: at(pool),
		// the remaining slots must fit into the remaining pool
		Prune: func(cur backtrack.Cursor, i int) bool {
			return len(pool)-i < k-cur.Depth
		},
		Accept: func(cur backtrack.Cursor, _ []T) bool {
			return cur.Depth == k
		},
	}, options...)
}

// Combine returns the k-element combinations of 1..n.
func Combine(n, k int, options ...engine.Option) [][]int {
	pool := make([]int, max(n, 0))
	for i := range pool {
		pool[i] = i + 1
	}
	return Combinations(pool, k, options...)
}
