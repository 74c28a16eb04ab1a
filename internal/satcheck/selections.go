// Package satcheck enumerates bounded-cardinality selections with a SAT
// solver. It shares no code with the backtracking engine and serves as
// an independent oracle for it.
package satcheck

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type NegativeSize int

func (e NegativeSize) Error() string {
	return fmt.Sprintf("negative selection universe size %d", int(e))
}

// Selections returns every subset of {0, ..., n-1} whose size lies in
// [lo, hi], each as an ascending index list, in lexicographic order.
//
// The cardinality bounds are encoded with a sorting network over one
// literal per index. After each model is read back, a clause blocking
// exactly that assignment of the index literals is added and the
// solver is asked again, until the formula becomes unsatisfiable.
func Selections(n, lo, hi int) ([][]int, error) {
	if n < 0 {
		return nil, NegativeSize(n)
	}
	lo, hi = max(lo, 0), min(hi, n)
	if lo > hi {
		return [][]int{}, nil
	}
	if n == 0 {
		return [][]int{{}}, nil
	}

	c := logic.NewCCap(n)
	ms := make([]z.Lit, n)
	for i := range ms {
		ms[i] = c.Lit()
	}
	cs := c.CardSort(ms)
	bounds := []z.Lit{cs.Geq(lo), cs.Leq(hi)}

	g := gini.New()
	c.ToCnf(g)

	result := [][]int{}
	for {
		g.Assume(bounds...)
		switch g.Solve() {
		case satisfiable:
		case unsatisfiable:
			slices.SortFunc(result, slices.Compare[[]int])
			return result, nil
		default:
			return nil, errors.New("unknown outcome")
		}

		selection := []int{}
		for i, m := range ms {
			if g.Value(m) {
				selection = append(selection, i)
				g.Add(m.Not())
			} else {
				g.Add(m)
			}
		}
		g.Add(z.LitNull)
		result = append(result, selection)
	}
}

// Count returns the number of selections Selections would return.
func Count(n, lo, hi int) (int, error) {
	s, err := Selections(n, lo, hi)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}
