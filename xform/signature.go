package xform

import "math"

// Epsilon is the quantization step for net-effect comparison. Matrix entries
// closer than Epsilon compare equal, which absorbs the floating error of
// composing many rotations and reflections.
const Epsilon = 1e-6

// Signature is the quantized 2×2 linear part of a composed chain — the
// canonical equality key for derivation deduplication. Signatures are
// comparable and usable as map keys.
type Signature [4]int64

// IdentitySignature returns the signature of the identity chain.
func IdentitySignature() Signature {
	return Identity().Signature()
}

// Signature composes c into a matrix and quantizes its linear part.
// Chains whose angles differ by multiples of 360° produce equal signatures.
func (c Chain) Signature() Signature {
	m := c.Mat()
	return Signature{
		quantize(m[0][0]), quantize(m[0][1]),
		quantize(m[1][0]), quantize(m[1][1]),
	}
}

// quantize snaps v to the Epsilon grid, normalizing negative zero.
func quantize(v float64) int64 {
	q := math.Round(v / Epsilon)
	if q == 0 {
		return 0
	}
	return int64(q)
}
