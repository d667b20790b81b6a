// Package symbols defines the relation-model types, sentinel errors, and
// load options.
package symbols

import (
	"errors"

	"github.com/katalvlaran/glyphtrain/xform"
)

// Sentinel errors for relation-model loading and queries.
var (
	// ErrRecoverableParse marks a single bad optional field; the field is
	// left at its default and loading continues.
	ErrRecoverableParse = errors.New("symbols: recoverable parse issue")

	// ErrParse marks a structurally invalid record; the record is skipped
	// and loading continues.
	ErrParse = errors.New("symbols: section parse failure")

	// ErrCriticalParse marks a relation-model invariant violation; the model
	// is unusable and loading aborts.
	ErrCriticalParse = errors.New("symbols: critical parse failure")

	// ErrUnknownSymbol is returned by queries for keys outside the model.
	ErrUnknownSymbol = errors.New("symbols: unknown symbol")
)

// DefaultSlashGroupKey names the similarity group whose samples provide the
// negation slash strokes.
const DefaultSlashGroupKey = "latex2e-OT1-|"

// SimilarityGroup is an ordered set of symbols with pixel-identical
// renderings. The first member is the group's leader.
type SimilarityGroup struct {
	Members []string
}

// Leader returns the canonical symbol of the group.
func (g SimilarityGroup) Leader() string { return g.Members[0] }

// Contains reports whether sym is a member of the group.
func (g SimilarityGroup) Contains(sym string) bool {
	for _, m := range g.Members {
		if m == sym {
			return true
		}
	}
	return false
}

// SymmetryEdge declares that applying Chain to renderings of Source yields
// a valid rendering of Target. Edges are directed: the inverse derivation
// exists only if separately declared.
type SymmetryEdge struct {
	Target string
	Source string
	Chain  xform.Chain
}

// Negation declares that Target renders as Source overlaid with a slash
// stroke scaled by Scale, rotated by Angle degrees, and translated by
// (-XOffset, -YOffset) in viewport units.
type Negation struct {
	Target  string
	Source  string
	Scale   float64
	Angle   float64
	XOffset float64
	YOffset float64
}

// OverlayMat returns the transform applied to the slash strokes before
// overlaying: scale first, then rotate, then translate by (-XOffset,
// -YOffset) against the 1000-unit viewport. The order is load-bearing;
// reordering corrupts negated renderings.
func (n Negation) OverlayMat() xform.Mat3 {
	return xform.TranslationMat(-n.XOffset, -n.YOffset).
		Mul(xform.RotationMat(n.Angle)).
		Mul(xform.ScaleMat(n.Scale, n.Scale))
}

// Option configures Load via functional arguments.
type Option func(*loadOptions)

// loadOptions holds resolved load configuration.
type loadOptions struct {
	similarityGlob string
	symmetryFile   string
	negationFile   string
	slashGroupKey  string
	warn           func(error)
}

// defaultLoadOptions returns the standard file layout and a no-op warning
// handler.
func defaultLoadOptions() loadOptions {
	return loadOptions{
		similarityGlob: "similar*",
		symmetryFile:   "symmetry.yaml",
		negationFile:   "negations.yaml",
		slashGroupKey:  DefaultSlashGroupKey,
		warn:           func(error) {},
	}
}

// WithSimilarityGlob overrides the glob matching similarity files.
func WithSimilarityGlob(glob string) Option {
	return func(o *loadOptions) {
		if glob != "" {
			o.similarityGlob = glob
		}
	}
}

// WithSymmetryFile overrides the symmetry definition file name.
func WithSymmetryFile(name string) Option {
	return func(o *loadOptions) {
		if name != "" {
			o.symmetryFile = name
		}
	}
}

// WithNegationFile overrides the negation definition file name.
func WithNegationFile(name string) Option {
	return func(o *loadOptions) {
		if name != "" {
			o.negationFile = name
		}
	}
}

// WithSlashGroup overrides the similarity-group key providing negation
// slash strokes.
func WithSlashGroup(key string) Option {
	return func(o *loadOptions) {
		if key != "" {
			o.slashGroupKey = key
		}
	}
}

// WithWarningHandler installs a sink for ErrRecoverableParse and ErrParse
// tier issues. The handler must not retain the error past the call.
func WithWarningHandler(fn func(error)) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.warn = fn
		}
	}
}
