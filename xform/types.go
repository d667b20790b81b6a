// Package xform defines transformation operators, chains, and their
// canonical token encoding.
package xform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadToken is returned when a chain token is neither rot<deg> nor mir<deg>.
var ErrBadToken = errors.New("xform: unrecognized transformation token")

// Kind discriminates the two operator families.
type Kind uint8

const (
	// Rotation rotates counter-clockwise by Angle degrees about the origin.
	Rotation Kind = iota

	// Reflection mirrors across the axis through the origin at Angle degrees.
	Reflection
)

// Transformation is a single geometric operator.
type Transformation struct {
	Kind  Kind
	Angle float64 // degrees
}

// Rot returns a rotation by deg degrees.
func Rot(deg float64) Transformation {
	return Transformation{Kind: Rotation, Angle: deg}
}

// Mir returns a reflection across the axis at deg degrees.
func Mir(deg float64) Transformation {
	return Transformation{Kind: Reflection, Angle: deg}
}

// Inverse returns the operator undoing t: rotations negate their angle,
// reflections are involutions and return themselves.
func (t Transformation) Inverse() Transformation {
	if t.Kind == Rotation {
		return Transformation{Kind: Rotation, Angle: -t.Angle}
	}
	return t
}

// Mat returns t's linear part as an affine matrix.
func (t Transformation) Mat() Mat3 {
	if t.Kind == Rotation {
		return RotationMat(t.Angle)
	}
	return ReflectionMat(t.Angle)
}

// Encode renders t as its canonical token, e.g. "rot90" or "mir45.5".
func (t Transformation) Encode() string {
	angle := strconv.FormatFloat(t.Angle, 'f', -1, 64)
	if t.Kind == Rotation {
		return "rot" + angle
	}
	return "mir" + angle
}

// ParseToken parses a canonical operator token.
func ParseToken(tok string) (Transformation, error) {
	var kind Kind
	var rest string
	switch {
	case strings.HasPrefix(tok, "rot"):
		kind, rest = Rotation, tok[3:]
	case strings.HasPrefix(tok, "mir"):
		kind, rest = Reflection, tok[3:]
	default:
		return Transformation{}, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	angle, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Transformation{}, fmt.Errorf("%w: %q: bad angle", ErrBadToken, tok)
	}
	return Transformation{Kind: kind, Angle: angle}, nil
}

// Chain is an ordered sequence of operators, applied first element first.
// A nil or empty chain is the identity.
type Chain []Transformation

// Identity returns the identity chain.
func Identity() Chain { return nil }

// Compose returns a new chain applying c first, then next.
// Neither receiver nor argument is mutated.
func (c Chain) Compose(next Chain) Chain {
	if len(c) == 0 && len(next) == 0 {
		return nil
	}
	out := make(Chain, 0, len(c)+len(next))
	out = append(out, c...)
	out = append(out, next...)
	return out
}

// Inverse returns the chain undoing c: element inverses in reverse order.
func (c Chain) Inverse() Chain {
	if len(c) == 0 {
		return nil
	}
	out := make(Chain, len(c))
	for i, t := range c {
		out[len(c)-1-i] = t.Inverse()
	}
	return out
}

// Mat composes the chain into a single affine matrix.
// Applying the result to a point equals applying each element in order.
func (c Chain) Mat() Mat3 {
	m := IdentityMat()
	for _, t := range c {
		m = t.Mat().Mul(m)
	}
	return m
}

// Encode joins the canonical operator tokens with commas.
// The identity chain encodes as the empty string.
func (c Chain) Encode() string {
	if len(c) == 0 {
		return ""
	}
	toks := make([]string, len(c))
	for i, t := range c {
		toks[i] = t.Encode()
	}
	return strings.Join(toks, ",")
}

// ParseChain parses a comma-joined token encoding; "" yields the identity.
func ParseChain(s string) (Chain, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make(Chain, 0, len(parts))
	for _, p := range parts {
		t, err := ParseToken(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Equivalent reports whether c and other have the same net effect on a unit
// shape, within Epsilon tolerance.
func (c Chain) Equivalent(other Chain) bool {
	return c.Signature() == other.Signature()
}
