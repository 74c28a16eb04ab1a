// Package enumerate configures the backtracking engine for the classic
// enumeration problems: combinations, combination sums, permutations,
// subsets and string partitions.
//
// Every operation copies its input before searching, returns paths in
// depth-first, pool-ascending order and never returns a nil result.
// Trailing engine options (tracers, limits) are passed through.
package enumerate

import (
	"cmp"
	"slices"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// run searches a problem built by this package. Those problems are
// always well formed, so a construction error is a bug here, not in the
// caller's input.
func run[T any](p backtrack.Problem[T], options ...engine.Option) [][]T {
	e, err := engine.New(p, options...)
	if err != nil {
		panic(err)
	}
	return e.Search()
}

func at[T any](pool []T) func(backtrack.Cursor, int) T {
	return func(_ backtrack.Cursor, i int) T {
		return pool[i]
	}
}

func sorted[T cmp.Ordered](pool []T) []T {
	s := slices.Clone(pool)
	slices.Sort(s)
	return s
}

// siblingDup skips a value already tried by an earlier sibling. Equal
// values are adjacent in a sorted pool, and the same value may still be
// chosen again further down the branch.
func siblingDup[T comparable](pool []T) func(backtrack.Cursor, int) bool {
	return func(cur backtrack.Cursor, i int) bool {
		return i > cur.Start && pool[i] == pool[i-1]
	}
}
