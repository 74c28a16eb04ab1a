package enumerate

import (
	"slices"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
)

// CombinationSum returns every multiset of pool values summing to
// target, where each value may be used any number of times. Only
// positive candidates take part; zero or negative values could be
// repeated without bound. A target of zero yields the empty multiset.
func CombinationSum(pool []int, target int, options ...engine.Option) [][]int {
	pool = positive(pool)
	return run(backtrack.Problem[int]{
		Size:    len(pool),
		Budget:  target,
		Element: at(pool),
		Skip:    siblingDup(pool),
		Prune:   exceeds(pool),
		// reuse: the child starts at the same position
		Advance: func(cur backtrack.Cursor, i int) backtrack.Cursor {
			cur.Start = i
			cur.Remaining -= pool[i]
			return cur
		},
		Accept: func(cur backtrack.Cursor, _ []int) bool {
			return cur.Remaining == 0
		},
	}, options...)
}

// CombinationSumWithDup returns every multiset of pool elements summing
// to target, using each pool position at most once. Duplicate values in
// the pool never produce duplicate results.
func CombinationSumWithDup(pool []int, target int, options ...engine.Option) [][]int {
	pool = sorted(pool)
	return run(backtrack.Problem[int]{
		Size:    len(pool),
		Budget:  target,
		Element: at(pool),
		Skip:    siblingDup(pool),
		Prune:   exceeds(pool),
		Advance: consume(pool),
		Accept: func(cur backtrack.Cursor, _ []int) bool {
			return cur.Remaining == 0
		},
	}, options...)
}

// CombinationSumK returns every selection of exactly k pool elements
// summing to target, each position used at most once.
func CombinationSumK(pool []int, k, target int, options ...engine.Option) [][]int {
	if k < 0 || k > len(pool) {
		return [][]int{}
	}
	pool = sorted(pool)
	over := exceeds(pool)
	return run(backtrack.Problem[int]{
		Size:    len(pool),
		Budget:  target,
		Element: at(pool),
		Skip:    siblingDup(pool),
		Prune: func(cur backtrack.Cursor, i int) bool {
			return cur.Depth == k || len(pool)-i < k-cur.Depth || over(cur, i)
		},
		Advance: consume(pool),
		Accept: func(cur backtrack.Cursor, _ []int) bool {
			return cur.Depth == k && cur.Remaining == 0
		},
	}, options...)
}

// CombinationSum3 returns every set of k distinct digits 1..9 summing
// to n.
func CombinationSum3(k, n int, options ...engine.Option) [][]int {
	return CombinationSumK([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, k, n, options...)
}

func positive(pool []int) []int {
	s := sorted(pool)
	first, _ := slices.BinarySearch(s, 1)
	return s[first:]
}

// exceeds prunes once a non-negative candidate overshoots the remaining
// budget. Later candidates of a sorted pool are at least as large, so
// none of them can fit either. Negative candidates never prune.
func exceeds(pool []int) func(backtrack.Cursor, int) bool {
	return func(cur backtrack.Cursor, i int) bool {
		return pool[i] >= 0 && pool[i] > cur.Remaining
	}
}

func consume(pool []int) func(backtrack.Cursor, int) backtrack.Cursor {
	return func(cur backtrack.Cursor, i int) backtrack.Cursor {
		cur.Start = i + 1
		cur.Remaining -= pool[i]
		return cur
	}
}
