package closure

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/glyphtrain/symbols"
)

// Arena memoizes per-leader closures over a single relation model.
// Closures are computed at most once; an Arena built with BuildArena is
// fully populated and every later read is a cache hit.
type Arena struct {
	model *symbols.Model
	opts  options

	mu       sync.Mutex
	done     map[string]*Closure
	visiting map[string]struct{}
}

// NewArena returns an empty arena over model. Closures are computed lazily
// on first request.
func NewArena(model *symbols.Model, opts ...Option) (*Arena, error) {
	if model == nil {
		return nil, ErrModelNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Arena{
		model:    model,
		opts:     o,
		done:     make(map[string]*Closure),
		visiting: make(map[string]struct{}),
	}, nil
}

// BuildArena computes the closure of every leader up front, surfacing any
// graph defect (hop ceiling, negation cycle) before consumers start reading.
func BuildArena(model *symbols.Model, opts ...Option) (*Arena, error) {
	a, err := NewArena(model, opts...)
	if err != nil {
		return nil, err
	}
	for _, leader := range model.Leaders() {
		if _, err := a.Closure(leader); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Model returns the relation model this arena was built over.
func (a *Arena) Model() *symbols.Model { return a.model }

// Closure returns the derivation closure for sym's leader, computing and
// caching it on first request. Any group member resolves to the same value.
func (a *Arena) Closure(sym string) (*Closure, error) {
	leader, err := a.model.LeaderOf(sym)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.get(leader)
}

// get resolves leader's closure under a.mu, recursing through negation
// sources. The visiting set catches negation cycles.
func (a *Arena) get(leader string) (*Closure, error) {
	if c, ok := a.done[leader]; ok {
		return c, nil
	}
	if _, open := a.visiting[leader]; open {
		return nil, fmt.Errorf("%w: via %s", ErrNegationCycle, leader)
	}
	a.visiting[leader] = struct{}{}
	defer delete(a.visiting, leader)

	c, err := a.compute(leader)
	if err != nil {
		return nil, err
	}
	a.done[leader] = c
	return c, nil
}
