// Package engine implements depth-first backtracking search over a
// backtrack.Problem.
//
// The engine owns the live path and used-mask of each search. Policies
// are consulted in a fixed order at every node: the terminal test, then
// for each reachable position the dedup policy (skip), the pruning
// policy (stop iterating) and finally the descent. Every path handed to
// a caller is a copy; the live buffer keeps mutating after acceptance.
package engine

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// Stats summarizes a single search.
type Stats struct {
	// Nodes is the number of search-tree nodes entered, the root
	// included.
	Nodes    int
	Accepted int
	Skipped  int
	Pruned   int
}

// Engine runs searches for one Problem. It holds no per-search state,
// so the same Engine may be walked repeatedly or concurrently, provided
// the configured Tracer and the Problem's policies are safe for
// concurrent use.
type Engine[T any] struct {
	problem backtrack.Problem[T]
	config  *config
}

// New validates p and returns an Engine for it.
func New[T any](p backtrack.Problem[T], options ...Option) (*Engine[T], error) {
	switch {
	case p.Size < 0:
		return nil, fmt.Errorf("%w: negative size %d", backtrack.ErrInvalidProblem, p.Size)
	case p.Element == nil:
		return nil, fmt.Errorf("%w: no element function", backtrack.ErrInvalidProblem)
	case p.Accept == nil:
		return nil, fmt.Errorf("%w: no terminal test", backtrack.ErrInvalidProblem)
	}
	c, err := newConfig(options...)
	if err != nil {
		return nil, err
	}
	return &Engine[T]{problem: p, config: c}, nil
}

// Walk explores the search tree depth-first in pool order and calls
// yield with a copy of every accepted path. The search stops early when
// yield returns false or the configured limit is reached.
func (e *Engine[T]) Walk(yield func(path []T) bool) Stats {
	s := search[T]{
		problem: &e.problem,
		tracer:  e.config.tracer,
		limit:   e.config.limit,
		yield:   yield,
	}
	root := backtrack.Cursor{Remaining: e.problem.Budget}
	if e.problem.Mask {
		s.used = bitset.New(uint(e.problem.Size))
		root.Used = s.used
	}
	s.descend(root)
	return s.stats
}

// All returns an iterator over accepted paths.
func (e *Engine[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		e.Walk(yield)
	}
}

// Search returns every accepted path in traversal order. The result is
// never nil.
func (e *Engine[T]) Search() [][]T {
	result := [][]T{}
	e.Walk(func(path []T) bool {
		result = append(result, path)
		return true
	})
	return result
}

// Exists reports whether at least one path is accepted, returning on
// the first acceptance.
func (e *Engine[T]) Exists() bool {
	found := false
	e.Walk(func([]T) bool {
		found = true
		return false
	})
	return found
}

type search[T any] struct {
	problem *backtrack.Problem[T]
	tracer  backtrack.Tracer
	limit   int
	yield   func([]T) bool

	path  []T
	used  *bitset.BitSet
	stats Stats
}

// descend reports false once the search has been stopped.
func (s *search[T]) descend(cur backtrack.Cursor) bool {
	p := s.problem
	s.stats.Nodes++

	if p.Accept(cur, s.path) {
		if !s.emit(cur) {
			return false
		}
		if !p.Descend {
			return true
		}
	}

	lo, hi := cur.Start, p.Size
	if p.Window != nil {
		lo, hi = p.Window(cur)
	}
	for i := lo; i < hi; i++ {
		if s.used != nil && s.used.Test(uint(i)) {
			continue
		}
		if p.Skip != nil && p.Skip(cur, i) {
			s.stats.Skipped++
			continue
		}
		if p.Prune != nil && p.Prune(cur, i) {
			s.stats.Pruned++
			s.tracer.Trace(position[T]{event: backtrack.Pruned, cursor: cur, candidate: i, path: s.path})
			break
		}

		s.path = append(s.path, p.Element(cur, i))
		if s.used != nil {
			s.used.Set(uint(i))
		}
		ok := s.descend(s.advance(cur, i))
		if s.used != nil {
			s.used.Clear(uint(i))
		}
		s.path = s.path[:len(s.path)-1]
		if !ok {
			return false
		}
	}
	return true
}

func (s *search[T]) advance(cur backtrack.Cursor, i int) backtrack.Cursor {
	next := cur
	if s.problem.Advance != nil {
		next = s.problem.Advance(cur, i)
	} else {
		next.Start = i + 1
	}
	next.Depth = cur.Depth + 1
	next.Used = s.used
	return next
}

func (s *search[T]) emit(cur backtrack.Cursor) bool {
	s.stats.Accepted++
	s.tracer.Trace(position[T]{event: backtrack.Accepted, cursor: cur, candidate: -1, path: s.path})

	path := make([]T, len(s.path))
	copy(path, s.path)
	if !s.yield(path) {
		return false
	}
	return s.limit == 0 || s.stats.Accepted < s.limit
}
