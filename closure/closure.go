package closure

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/glyphtrain/xform"
)

// node is one BFS frontier entry: chain applied to source's strokes renders
// the leader under derivation.
type node struct {
	source string
	chain  xform.Chain
	hops   int
}

// state is the deduplication key: a source plus the net effect of the chain.
// Two routes reaching the same state are interchangeable; the first one,
// reached in the fewest hops, is kept.
type state struct {
	source string
	sig    xform.Signature
}

// compute runs the breadth-first derivation traversal for leader and then
// attaches negation paths. Caller holds a.mu.
func (a *Arena) compute(leader string) (*Closure, error) {
	c := newClosure(leader)

	group, err := a.model.GroupOf(leader)
	if err != nil {
		return nil, err
	}

	// Similarity members seed the frontier with identity chains. Sorted so
	// equal-hop ties resolve the same way on every run.
	members := append([]string(nil), group.Members...)
	sort.Strings(members)

	seen := make(map[state]struct{}, len(members))
	queue := make([]node, 0, len(members))
	for _, m := range members {
		seen[state{m, xform.IdentitySignature()}] = struct{}{}
		queue = append(queue, node{source: m, chain: xform.Identity()})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		c.add(Path{Source: cur.source, Chain: cur.chain})

		// Standing at cur with chain c, an edge deriving cur.source from
		// e.Source via e.Chain extends the route: e.Chain first, then c.
		for _, e := range a.model.EdgesByTarget(cur.source) {
			chain := e.Chain.Compose(cur.chain)
			st := state{e.Source, chain.Signature()}
			if _, dup := seen[st]; dup {
				continue
			}
			if cur.hops+1 > a.opts.maxHops {
				return nil, fmt.Errorf("%w: deriving %s still expanding after %d hops",
					ErrHopCeiling, leader, a.opts.maxHops)
			}
			seen[st] = struct{}{}
			queue = append(queue, node{source: e.Source, chain: chain, hops: cur.hops + 1})
		}
	}

	if err := a.attachNegations(c); err != nil {
		return nil, err
	}
	return c, nil
}

// attachNegations appends, for every negation whose target sits in c's
// similarity group, the negation source's full closure re-tagged with the
// overlay recipe. Negation is terminal: paths already carrying an overlay
// are not re-negated. Caller holds a.mu.
func (a *Arena) attachNegations(c *Closure) error {
	for _, n := range a.model.Negations() {
		targetLeader, err := a.model.LeaderOf(n.Target)
		if err != nil {
			return err
		}
		if targetLeader != c.leader {
			continue
		}
		sourceLeader, err := a.model.LeaderOf(n.Source)
		if err != nil {
			return err
		}
		sub, err := a.get(sourceLeader)
		if err != nil {
			return err
		}
		overlay := n
		for _, p := range sub.paths {
			if p.Negation != nil {
				continue
			}
			c.add(Path{Source: p.Source, Chain: p.Chain, Negation: &overlay})
		}
	}
	return nil
}
