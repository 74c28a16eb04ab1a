package enumerate

import (
	"cmp"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// Subsets returns all 2^n selections of pool positions, starting with
// the empty one.
func Subsets[T any](pool []T, options ...engine.Option) [][]T {
	pool = append([]T(nil), pool...)
	return run(subsets(pool, nil), options...)
}

// SubsetsWithDup returns every distinct sub-multiset of pool.
func SubsetsWithDup[T cmp.Ordered](pool []T, options ...engine.Option) [][]T {
	pool = sorted(pool)
	return run(subsets(pool, siblingDup(pool)), options...)
}

func subsets[T any](pool []T, skip func(backtrack.Cursor, int) bool) backtrack.Problem[T] {
	return backtrack.Problem[T]{
		Size:    len(pool),
		Element: at(pool),
		Skip:    skip,
		Accept: func(backtrack.Cursor, []T) bool {
			return true
		},
		Descend: true,
	}
}
