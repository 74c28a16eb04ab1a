package engine

import (
	"github.com/operator-framework/backtrack/pkg/backtrack"
)

type config struct {
	tracer backtrack.Tracer
	limit  int
}

type Option func(c *config) error

// WithTracer installs a Tracer that observes acceptances and prunes. A
// tracer shared by concurrent walks must be safe for concurrent use.
func WithTracer(t backtrack.Tracer) Option {
	return func(c *config) error {
		c.tracer = t
		return nil
	}
}

// WithLimit stops a search after n accepted paths. Values below one
// mean no limit.
func WithLimit(n int) Option {
	return func(c *config) error {
		c.limit = max(n, 0)
		return nil
	}
}

var defaults = []Option{
	func(c *config) error {
		if c.tracer == nil {
			c.tracer = DefaultTracer{}
		}
		return nil
	},
}

func newConfig(options ...Option) (*config, error) {
	c := config{}
	for _, option := range append(options, defaults...) {
		if err := option(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}
