package backtrack

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrInvalidProblem is returned when a Problem is missing one of
	// its required policies or declares a negative size. It signals a
	// contract violation by the caller, never an empty search space.
	ErrInvalidProblem = errors.New("backtrack: invalid problem")

	// ErrNilValidator is returned by partitioning operations that are
	// handed a nil segment validator.
	ErrNilValidator = errors.New("backtrack: nil segment validator")
)

// Cursor describes which further choices are reachable from a node of
// the search tree.
type Cursor struct {
	// Start is the first pool position a child may choose from.
	Start int
	// Remaining is the budget left on this branch (remaining target
	// value or remaining picks, depending on the problem).
	Remaining int
	// Depth is the number of elements on the current path.
	Depth int
	// Used marks the pool positions currently on the path. It is nil
	// unless the problem asked for a mask, and must not be modified
	// by policies.
	Used *bitset.BitSet
}

// IsUsed reports whether pool position i is on the current path.
func (c Cursor) IsUsed(i int) bool {
	return c.Used != nil && i >= 0 && c.Used.Test(uint(i))
}

// Problem values configure one search: the candidate positions and the
// policies consulted at every node. Element and Accept are required.
type Problem[T any] struct {
	// Size is the number of candidate positions (pool length, or input
	// length for positional problems).
	Size int
	// Budget seeds Cursor.Remaining at the root.
	Budget int
	// Mask allocates a used-mask; positions on the path are never
	// offered again below them.
	Mask bool

	// Element returns the value pushed on the path when position i is
	// chosen at cur.
	Element func(cur Cursor, i int) T
	// Window returns the half-open range of positions reachable from
	// cur. Defaults to [cur.Start, Size).
	Window func(cur Cursor) (lo, hi int)
	// Skip is the sibling dedup policy; a true result skips position
	// i and moves on to the next one.
	Skip func(cur Cursor, i int) bool
	// Prune is the pruning policy; a true result abandons position i
	// and every later position of this node.
	Prune func(cur Cursor, i int) bool
	// Advance computes the child cursor for position i. Defaults to
	// Start = i+1. Depth and Used are always maintained by the engine.
	Advance func(cur Cursor, i int) Cursor
	// Accept is the terminal test.
	Accept func(cur Cursor, path []T) bool
	// Descend keeps exploring below accepted nodes.
	Descend bool
}
