// Package glyphtrain turns a small corpus of handwritten symbol samples into
// a balanced, reproducible training dataset for a large alphabet of
// LaTeX-style symbols.
//
// Many symbols are visually related: identical glyphs under different
// encodings, glyphs related by rotation or reflection, or glyphs formed by
// overlaying a negation slash. glyphtrain declares those relations once and
// then derives training data for every symbol from the samples of its
// relatives, instead of collecting samples for each variant independently.
//
// The module is organized as small, flat packages:
//
//	symbols/ — the immutable relation model: similarity groups, symmetry
//	          edges and negation definitions, loaded from declarative
//	          files and validated strictly
//	xform/   — the transformation algebra: rotations and reflections,
//	          chain composition, tolerance-aware net-effect signatures
//	closure/ — the derivation closure engine: for every leader symbol,
//	          every distinct (source, chain, negation) route that renders it
//	store/   — the keyed raw-sample store (BadgerDB-backed, with an
//	          in-memory variant for tests)
//	dataset/ — the deterministic train/validation partitioner, the logistic
//	          class balancer, and the negation slash pairing
//	report/  — frequency tallies and CSV export for diagnostics
//	cmd/     — the glyphtrain CLI (build, freq, verify)
//
// Everything downstream of the relation model is deterministic: given the
// same model, sample store, split fraction and seed, independent train and
// validation builds produce exactly complementary record sets.
package glyphtrain
