// Package xform provides the transformation algebra used to relate symbol
// renderings: rotations and reflections, their composition into ordered
// chains, and tolerance-aware net-effect signatures for deduplication.
//
// What
//
//   - Transformation: a single operator, either a rotation by an angle in
//     degrees or a reflection across an axis at an angle in degrees.
//   - Chain: an ordered sequence of operators, applied first element first.
//     The empty chain is the identity and the neutral element of Compose.
//   - Mat3: a row-major 3×3 affine matrix with constructors for rotation,
//     reflection, scale, skew and translation, used both for composing
//     chains and for building negation-overlay and jitter transforms.
//   - Signature: the quantized linear part of a chain's composed matrix.
//     Two chains are equivalent iff their Signatures are equal, so angles
//     equal modulo 360° compare equal and a reflection composed with itself
//     collapses to the identity.
//
// Why
//
//	The closure engine must deduplicate derivation routes by what a chain
//	does, not by how it is written: rot90,rot90 and rot180 are the same
//	derivation. Comparing quantized composed matrices gives an exact,
//	hashable equality key that absorbs floating-point composition error.
//
// Encoding
//
//	Each operator has a canonical token — "rot90", "mir45.5" — and a chain
//	encodes as its tokens joined by commas ("" for the identity). Encodings
//	round-trip through ParseChain, appear verbatim in the declarative
//	relation-model files, and provide the deterministic ordering key used
//	to break ties between equal-hop derivation routes.
//
// Errors
//
//   - ErrBadToken — a chain token is neither rot<deg> nor mir<deg>.
package xform
