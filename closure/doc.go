// Package closure computes, for every leader symbol, the complete set of
// derivation paths: every distinct way to render the leader from stored
// samples of related symbols.
//
// What
//
//   - Path: one derivation route — a source symbol, the transformation
//     chain turning that source's strokes into the leader's shape, and an
//     optional negation overlay.
//   - Closure: all Paths for one leader, in discovery order, plus the set
//     of distinct contributing source symbols.
//   - Arena: a cache of per-leader closures over one relation model, built
//     eagerly with BuildArena or filled lazily through Closure. Read-only
//     and safe for concurrent use once built.
//
// Algorithm
//
//	Breadth-first traversal seeded with every member of the leader's
//	similarity group carrying the identity chain (similarity is free).
//	Expanding a node follows the symmetry edges that derive it: standing at
//	node X with accumulated chain c (c applied to X's strokes renders the
//	leader), an edge declaring X derivable from A via chain t yields source
//	A with chain t-then-c. A (source, net-effect signature) pair already
//	recorded is pruned, so the first-discovered chain — fewest hops — wins;
//	within a level, similarity members and edges expand in lexicographic
//	order of symbol key and chain encoding, which fixes the tie-break
//	between equal-hop routes deterministically.
//
//	Negation is terminal: after traversal, every negation definition whose
//	target lies in the leader's similarity group contributes the negation
//	source's full closure, each path re-tagged with the definition. A
//	negated path never composes with further symmetry steps.
//
// Determinism
//
//	Seeds, edge expansion, and negation attachment all iterate in sorted
//	order, so Paths() is fully reproducible across runs and processes —
//	the property the dataset partitioner builds on.
//
// Termination
//
//	Signature pruning bounds revisits on well-formed models. A model that
//	keeps producing novel net effects (e.g. a 1° rotation cycle) trips the
//	hop ceiling and surfaces ErrHopCeiling; traversal never truncates
//	silently.
//
// Errors
//
//   - ErrModelNil        — nil relation model.
//   - ErrOptionViolation — invalid option (e.g. non-positive hop ceiling).
//   - ErrHopCeiling      — graph still expanding at the hop ceiling.
//   - ErrNegationCycle   — negation definitions form a cycle.
//   - symbols.ErrUnknownSymbol — the requested symbol is not in the model.
package closure
