package enumerate

import (
	"cmp"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// Permutations returns every ordering of the pool positions. Equal
// values at different positions are treated as distinct.
func Permutations[T any](pool []T, options ...engine.Option) [][]T {
	pool = append([]T(nil), pool...)
	return run(permutations(pool, nil), options...)
}

// PermutationsWithDup returns every distinct ordering of the pool
// values; equal values never yield repeated orderings.
func PermutationsWithDup[T cmp.Ordered](pool []T, options ...engine.Option) [][]T {
	pool = sorted(pool)
	// Among equal values only the leftmost unused one may be placed
	// next; a later copy while an earlier one is unused is a sibling
	// repeat.
	skip := func(cur backtrack.Cursor, i int) bool {
		return i > 0 && pool[i] == pool[i-1] && !cur.IsUsed(i-1)
	}
	return run(permutations(pool, skip), options...)
}

func permutations[T any](pool []T, skip func(backtrack.Cursor, int) bool) backtrack.Problem[T] {
	return backtrack.Problem[T]{
		Size:    len(pool),
		Mask:    true,
		Element: at(pool),
		Window: func(backtrack.Cursor) (int, int) {
			return 0, len(pool)
		},
		Skip: skip,
		Accept: func(cur backtrack.Cursor, _ []T) bool {
			return cur.Depth == len(pool)
		},
	}
}
