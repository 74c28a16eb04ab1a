package engine

import (
	"sync"

	"github.com/go-logr/logr"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// DefaultTracer discards every position. It is used when no tracer is
// configured.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ backtrack.SearchPosition) {
}

// LoggingTracer reports acceptances at V(1) and prunes at V(2).
type LoggingTracer struct {
	Logger logr.Logger
}

// Trace logs accepted and pruned positions.
func (t LoggingTracer) Trace(p backtrack.SearchPosition) {
	cur := p.Cursor()
	switch p.Event() {
	case backtrack.Accepted:
		t.Logger.V(1).Info("path accepted", "path", p.Path(), "depth", cur.Depth, "remaining", cur.Remaining)
	case backtrack.Pruned:
		t.Logger.V(2).Info("branch pruned", "path", p.Path(), "candidate", p.Candidate(), "start", cur.Start, "remaining", cur.Remaining)
	}
}

// CountingTracer tallies events by kind. It is safe for concurrent use,
// so one instance may observe several walks of the same Engine.
type CountingTracer struct {
	mu     sync.Mutex
	counts map[backtrack.Event]int
}

func (t *CountingTracer) Trace(p backtrack.SearchPosition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.counts == nil {
		t.counts = map[backtrack.Event]int{}
	}
	t.counts[p.Event()]++
}

// Count returns how many positions of kind e have been traced.
func (t *CountingTracer) Count(e backtrack.Event) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[e]
}

type position[T any] struct {
	event     backtrack.Event
	cursor    backtrack.Cursor
	candidate int
	path      []T
}

var _ backtrack.SearchPosition = position[int]{}

func (p position[T]) Event() backtrack.Event {
	return p.event
}

func (p position[T]) Cursor() backtrack.Cursor {
	return p.cursor
}

func (p position[T]) Candidate() int {
	return p.candidate
}

func (p position[T]) Path() []any {
	out := make([]any, len(p.path))
	for i, v := range p.path {
		out[i] = v
	}
	return out
}

// Tracers fans each position out to every non-nil tracer, in order. The
// result is as safe for concurrent use as the least safe of its members.
func Tracers(tracers ...backtrack.Tracer) backtrack.Tracer {
	var ts multiTracer
	for _, t := range tracers {
		if t != nil {
			ts = append(ts, t)
		}
	}
	return ts
}

type multiTracer []backtrack.Tracer

func (ts multiTracer) Trace(p backtrack.SearchPosition) {
	for _, t := range ts {
		t.Trace(p)
	}
}
