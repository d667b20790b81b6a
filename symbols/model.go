package symbols

import (
	"fmt"
	"sort"
)

// Model is the immutable relation graph. All lookups are pure and safe for
// concurrent use; enumerations return fresh slices in a fixed, documented
// order so callers can rely on reproducible iteration.
type Model struct {
	groups     []SimilarityGroup // declaration order, leader first per group
	groupIndex map[string]int    // symbol → index into groups

	leaders []string // sorted ascending
	symbols []string // sorted ascending

	byTarget map[string][]SymmetryEdge // Target → edges, sorted by (Source, chain encoding)
	bySource map[string][]SymmetryEdge // Source → edges, sorted by (Target, chain encoding)

	negations []Negation     // sorted by Target
	negIndex  map[string]int // target → index into negations

	slashGroupKey string
}

// HasSymbol reports whether sym is declared in some similarity group.
func (m *Model) HasSymbol(sym string) bool {
	_, ok := m.groupIndex[sym]
	return ok
}

// Symbols returns every declared symbol, sorted ascending.
func (m *Model) Symbols() []string {
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Leaders returns the canonical symbol of every similarity group, sorted
// ascending.
func (m *Model) Leaders() []string {
	out := make([]string, len(m.leaders))
	copy(out, m.leaders)
	return out
}

// GroupOf returns the similarity group containing sym.
func (m *Model) GroupOf(sym string) (SimilarityGroup, error) {
	i, ok := m.groupIndex[sym]
	if !ok {
		return SimilarityGroup{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	g := m.groups[i]
	members := make([]string, len(g.Members))
	copy(members, g.Members)
	return SimilarityGroup{Members: members}, nil
}

// LeaderOf returns the canonical symbol for sym's similarity group.
func (m *Model) LeaderOf(sym string) (string, error) {
	i, ok := m.groupIndex[sym]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	return m.groups[i].Leader(), nil
}

// IsLeader reports whether sym leads its similarity group.
func (m *Model) IsLeader(sym string) bool {
	i, ok := m.groupIndex[sym]
	return ok && m.groups[i].Leader() == sym
}

// EdgesByTarget returns the symmetry edges that derive sym from other
// symbols' renderings, sorted by source symbol and then by chain encoding.
// The closure engine walks these.
func (m *Model) EdgesByTarget(sym string) []SymmetryEdge {
	return copyEdges(m.byTarget[sym])
}

// EdgesBySource returns the symmetry edges that reuse sym's renderings for
// other symbols, sorted by target symbol and then by chain encoding.
func (m *Model) EdgesBySource(sym string) []SymmetryEdge {
	return copyEdges(m.bySource[sym])
}

// Negations returns all negation definitions, sorted by target symbol.
func (m *Model) Negations() []Negation {
	out := make([]Negation, len(m.negations))
	copy(out, m.negations)
	return out
}

// NegationOf returns the negation definition targeting sym, if any.
func (m *Model) NegationOf(target string) (Negation, bool) {
	i, ok := m.negIndex[target]
	if !ok {
		return Negation{}, false
	}
	return m.negations[i], true
}

// SlashGroup returns the similarity group providing negation slash strokes.
func (m *Model) SlashGroup() (SimilarityGroup, error) {
	return m.GroupOf(m.slashGroupKey)
}

// SlashGroupKey returns the configured slash-group symbol key.
func (m *Model) SlashGroupKey() string { return m.slashGroupKey }

// copyEdges clones an edge slice so callers cannot mutate model state.
func copyEdges(edges []SymmetryEdge) []SymmetryEdge {
	if len(edges) == 0 {
		return nil
	}
	out := make([]SymmetryEdge, len(edges))
	copy(out, edges)
	return out
}

// index (re)builds the lookup structures from the declared data. Load calls
// it after each loading stage; the model is immutable once Load returns.
func (m *Model) index() {
	m.groupIndex = make(map[string]int)
	m.leaders = m.leaders[:0]
	m.symbols = m.symbols[:0]
	for i, g := range m.groups {
		for _, sym := range g.Members {
			m.groupIndex[sym] = i
		}
		m.leaders = append(m.leaders, g.Leader())
		m.symbols = append(m.symbols, g.Members...)
	}
	sort.Strings(m.leaders)
	sort.Strings(m.symbols)

	for sym, edges := range m.byTarget {
		sortEdges(edges, true)
		m.byTarget[sym] = edges
	}
	for sym, edges := range m.bySource {
		sortEdges(edges, false)
		m.bySource[sym] = edges
	}

	sort.Slice(m.negations, func(i, j int) bool {
		return m.negations[i].Target < m.negations[j].Target
	})
	m.negIndex = make(map[string]int, len(m.negations))
	for i, n := range m.negations {
		m.negIndex[n.Target] = i
	}
}

// sortEdges orders edges by the far endpoint (Source for target-keyed
// lists, Target for source-keyed lists) and then by chain encoding.
func sortEdges(edges []SymmetryEdge, bySource bool) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		ka, kb := a.Target, b.Target
		if bySource {
			ka, kb = a.Source, b.Source
		}
		if ka != kb {
			return ka < kb
		}
		return a.Chain.Encode() < b.Chain.Encode()
	})
}
