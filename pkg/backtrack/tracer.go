package backtrack

// Event identifies what happened at a traced search position.
type Event int

const (
	// Accepted is traced when a path passes the terminal test.
	Accepted Event = iota
	// Pruned is traced when the pruning policy cuts off a node's
	// remaining candidates.
	Pruned
)

func (e Event) String() string {
	switch e {
	case Accepted:
		return "accepted"
	case Pruned:
		return "pruned"
	}
	return "unknown"
}

type SearchPosition interface {
	Event() Event
	Cursor() Cursor
	// Candidate is the position the event refers to, or -1 for
	// acceptance.
	Candidate() int
	Path() []any
}

type Tracer interface {
	Trace(p SearchPosition)
}
