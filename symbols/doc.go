// Package symbols loads and validates the static symbol relation model:
// similarity groups, symmetry edges, and negation definitions.
//
// What
//
//   - SimilarityGroup: symbols whose rendered shape is pixel-identical.
//     Groups partition the symbol universe; the first declared member is the
//     group's leader and serves as the training class label.
//   - SymmetryEdge: a directed declaration that applying a transformation
//     chain to renderings of Source yields a valid rendering of Target.
//     Edges are never inverted implicitly; an inverse relation must be
//     declared separately.
//   - Negation: a recipe overlaying a transformed slash stroke onto a source
//     symbol's rendering to form the target symbol.
//   - Model: the immutable result of Load — adjacency both ways, group and
//     leader lookups, negation lookups. Built once, read-only thereafter,
//     safe for concurrent use.
//
// Input files
//
//	Similarity groups come from plain text files (glob "similar*" by
//	default): one group per line, whitespace-separated symbol keys, leader
//	first; '#' starts a comment. Symmetry edges and negation definitions
//	come from YAML files with explicit record lists; chains use the xform
//	token encoding ("rot90,mir45").
//
// Error tiers
//
//	Three severities, all surfaced, none silently swallowed:
//
//	  - ErrRecoverableParse — a single bad optional field; the field keeps
//	    its default, the issue goes to the warning handler, loading continues.
//	  - ErrParse — a structurally invalid record; the record is skipped and
//	    reported, loading continues.
//	  - ErrCriticalParse — a relation-model invariant violation (groups not
//	    disjoint, duplicate keys across files, unknown edge endpoints,
//	    duplicate equivalent edges, missing slash group). Load aborts; there
//	    is no partial model.
//
//	Branch with errors.Is. Install a handler for the non-fatal tiers with
//	WithWarningHandler.
package symbols
