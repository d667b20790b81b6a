package symbols

import (
	"fmt"
	"sort"
)

// validateSimilarity runs the disjointness suite over the declared groups:
// no symbol twice within a line, no duplicate lines, no subset lines, all
// lines pairwise disjoint within a file, and no key shared across files.
// Every violation is critical — the partition property underpins everything
// downstream.
func validateSimilarity(names []string, perFile map[string][]SimilarityGroup) error {
	globalKeys := make(map[string]string) // symbol → file that declared it

	for _, name := range names {
		groups := perFile[name]
		sets := make([]map[string]struct{}, len(groups))

		for i, g := range groups {
			set := make(map[string]struct{}, len(g.Members))
			for _, sym := range g.Members {
				if _, dup := set[sym]; dup {
					return fmt.Errorf("%w: %s: symbol %q listed twice in group %d",
						ErrCriticalParse, name, sym, i+1)
				}
				set[sym] = struct{}{}
			}
			sets[i] = set
		}

		for i := range sets {
			for j := range sets {
				if i == j {
					continue
				}
				if isSubset(sets[i], sets[j]) {
					if len(sets[i]) == len(sets[j]) {
						if i < j {
							return fmt.Errorf("%w: %s: groups %d and %d are identical",
								ErrCriticalParse, name, i+1, j+1)
						}
						continue
					}
					return fmt.Errorf("%w: %s: group %d is a subset of group %d",
						ErrCriticalParse, name, i+1, j+1)
				}
				if shared := intersect(sets[i], sets[j]); shared != "" {
					return fmt.Errorf("%w: %s: groups %d and %d share symbol %q",
						ErrCriticalParse, name, i+1, j+1, shared)
				}
			}
		}

		for i, g := range groups {
			for _, sym := range g.Members {
				if prev, dup := globalKeys[sym]; dup {
					return fmt.Errorf("%w: symbol %q declared in both %s and %s (group %d)",
						ErrCriticalParse, sym, prev, name, i+1)
				}
				globalKeys[sym] = name
			}
		}
	}
	return nil
}

// validateEdges requires declared endpoints everywhere and rejects duplicate
// declarations: two edges with the same endpoints and equivalent chains are
// an authoring error, caught here rather than silently deduplicated later.
func validateEdges(m *Model) error {
	targets := make([]string, 0, len(m.byTarget))
	for target := range m.byTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		edges := m.byTarget[target]
		if !m.HasSymbol(target) {
			return fmt.Errorf("%w: symmetry edge for undeclared symbol %q", ErrCriticalParse, target)
		}
		for i, e := range edges {
			if !m.HasSymbol(e.Source) {
				return fmt.Errorf("%w: symmetry edge for %s uses undeclared source %q",
					ErrCriticalParse, e.Target, e.Source)
			}
			for j := i + 1; j < len(edges); j++ {
				o := edges[j]
				if e.Source == o.Source && e.Chain.Equivalent(o.Chain) {
					return fmt.Errorf("%w: duplicate symmetry edge %s from %s (%s ≡ %s)",
						ErrCriticalParse, e.Target, e.Source, e.Chain.Encode(), o.Chain.Encode())
				}
			}
		}
	}
	return nil
}

// validateNegations requires declared endpoints, unique targets, and the
// presence of the slash group whenever any negation is declared.
func validateNegations(m *Model) error {
	seen := make(map[string]struct{}, len(m.negations))
	for _, n := range m.negations {
		if !m.HasSymbol(n.Target) {
			return fmt.Errorf("%w: negation targets undeclared symbol %q", ErrCriticalParse, n.Target)
		}
		if !m.HasSymbol(n.Source) {
			return fmt.Errorf("%w: negation %q has undeclared source %q", ErrCriticalParse, n.Target, n.Source)
		}
		if _, dup := seen[n.Target]; dup {
			return fmt.Errorf("%w: symbol %q has multiple negation definitions", ErrCriticalParse, n.Target)
		}
		seen[n.Target] = struct{}{}
	}
	if len(m.negations) > 0 && !m.HasSymbol(m.slashGroupKey) {
		return fmt.Errorf("%w: negations declared but slash group %q is not",
			ErrCriticalParse, m.slashGroupKey)
	}
	return nil
}

// isSubset reports a ⊆ b.
func isSubset(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// intersect returns one shared key of a and b, or "".
func intersect(a, b map[string]struct{}) string {
	for k := range a {
		if _, ok := b[k]; ok {
			return k
		}
	}
	return ""
}
