// Package closure defines derivation paths, options, and sentinel errors
// for the closure engine.
package closure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glyphtrain/symbols"
	"github.com/katalvlaran/glyphtrain/xform"
)

// Sentinel errors for closure computation.
var (
	// ErrModelNil is returned if a nil relation model is passed.
	ErrModelNil = errors.New("closure: relation model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closure: invalid option supplied")

	// ErrHopCeiling is returned when traversal is still discovering new
	// derivation states at the hop ceiling — a misconfigured relation graph.
	ErrHopCeiling = errors.New("closure: hop ceiling exceeded")

	// ErrNegationCycle is returned when negation definitions form a cycle.
	ErrNegationCycle = errors.New("closure: negation definitions form a cycle")
)

// DefaultMaxHops bounds the number of symmetry edges composed into one
// derivation chain. Real relation graphs stay far below this.
const DefaultMaxHops = 16

// Path is one derivation route for a leader symbol: apply Chain to a raw
// sample of Source, then, if Negation is set, overlay the transformed slash.
// Treat Chain as read-only; paths are shared across closure consumers.
type Path struct {
	Source   string
	Chain    xform.Chain
	Negation *symbols.Negation
}

// Option configures closure computation via functional arguments.
type Option func(*options)

// options holds resolved closure configuration.
type options struct {
	maxHops int
	err     error
}

// defaultOptions returns the standard hop ceiling.
func defaultOptions() options {
	return options{maxHops: DefaultMaxHops}
}

// WithMaxHops overrides the hop ceiling. Values < 1 are an option violation.
func WithMaxHops(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxHops must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxHops = n
	}
}

// Closure holds every derivation path for one leader symbol.
type Closure struct {
	leader  string
	paths   []Path
	sources []string            // first-appearance order
	seen    map[string]struct{} // source membership during build
}

// Leader returns the symbol this closure derives.
func (c *Closure) Leader() string { return c.leader }

// Len returns the number of derivation paths.
func (c *Closure) Len() int { return len(c.paths) }

// Paths returns the derivation paths in discovery (BFS level) order.
// The slice is fresh; the chains within are shared and read-only.
func (c *Closure) Paths() []Path {
	out := make([]Path, len(c.paths))
	copy(out, c.paths)
	return out
}

// Sources returns the distinct symbols contributing at least one path,
// in first-appearance order.
func (c *Closure) Sources() []string {
	out := make([]string, len(c.sources))
	copy(out, c.sources)
	return out
}

// add appends a path and tracks its source.
func (c *Closure) add(p Path) {
	c.paths = append(c.paths, p)
	if _, ok := c.seen[p.Source]; !ok {
		c.seen[p.Source] = struct{}{}
		c.sources = append(c.sources, p.Source)
	}
}

// newClosure returns an empty closure for leader.
func newClosure(leader string) *Closure {
	return &Closure{leader: leader, seen: make(map[string]struct{})}
}
