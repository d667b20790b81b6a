// Package dataset defines training records, build options, and sentinel
// errors for dataset assembly.
package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glyphtrain/symbols"
	"github.com/katalvlaran/glyphtrain/xform"
)

// Sentinel errors for dataset assembly.
var (
	// ErrBadSplit is returned when the validation fraction leaves either
	// partition degenerate.
	ErrBadSplit = errors.New("dataset: validation fraction must be in (0, 0.5)")

	// ErrNoSamples is returned when a class's closure reaches no stored
	// sample: a declared class that cannot be trained is a configuration
	// defect, not a quiet omission. WithSkipStarved downgrades it to a skip.
	ErrNoSamples = errors.New("dataset: no stored samples reach class")

	// ErrNoSlashSamples is returned when negated records are required but
	// the slash group has no stored samples.
	ErrNoSlashSamples = errors.New("dataset: no slash samples for negation pairing")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataset: invalid option supplied")
)

// Defaults for dataset assembly.
const (
	// DefaultValidation is the validation partition fraction.
	DefaultValidation = 0.1

	// DefaultSampleCap bounds the per-class training record count after
	// augmentation.
	DefaultSampleCap = 1000

	// DefaultAugmentMax is the balance-curve ceiling: a class with very few
	// real samples is multiplied by up to this factor.
	DefaultAugmentMax = 10.0

	// DefaultAugmentMin is the balance-curve floor for sample-rich classes.
	DefaultAugmentMin = 0.2
)

// Record is one training instance: a recipe naming the stored sample, the
// derivation chain, and the decorations to apply when the consumer resolves
// it against the store. Application order is fixed: Chain on the source
// strokes first, then the slash sample transformed by Negation.OverlayMat
// and overlaid, then any Jitter(AugSeed) perturbation, then the consumer's
// own rescale and centering.
type Record struct {
	// Label is the class the resolved drawing trains, always a leader.
	Label string

	// Source is the symbol the stored sample was drawn as.
	Source string

	// SampleKey locates the stroke data in the sample store.
	SampleKey uint64

	// Chain transforms the source strokes into the label's shape.
	Chain xform.Chain

	// Negation, when set, overlays a slash after the chain is applied.
	Negation *symbols.Negation

	// SlashKey locates the slash sample for the overlay. Meaningful only
	// when Negation is set.
	SlashKey uint64

	// Augmented marks replayed balance copies; AugSeed drives their jitter.
	Augmented bool
	AugSeed   uint32
}

// ClassStats counts one class's records by origin.
type ClassStats struct {
	Real       int // training records from distinct stored derivations
	Similar    int // of Real: identity chains from the similarity group
	Symmetry   int // of Real: non-identity chains, not negated
	Negated    int // of Real: records carrying a negation overlay
	Augmented  int // balance copies added to training
	Validation int
	Capped     bool // a partition was truncated by the sample cap
}

// Stats aggregates per-class counts for the whole build.
type Stats struct {
	Classes map[string]ClassStats
}

// TotalTrain sums real and augmented training records over all classes.
func (s Stats) TotalTrain() int {
	n := 0
	for _, c := range s.Classes {
		n += c.Real + c.Augmented
	}
	return n
}

// TotalValidation sums validation records over all classes.
func (s Stats) TotalValidation() int {
	n := 0
	for _, c := range s.Classes {
		n += c.Validation
	}
	return n
}

// Dataset is the assembled training corpus.
type Dataset struct {
	Train      []Record
	Validation []Record
	Stats      Stats
}

// Option configures dataset assembly via functional arguments.
type Option func(*options)

// options holds resolved build configuration.
type options struct {
	seed        uint64
	validation  float64
	sampleCap   int
	augmentMax  float64
	augmentMin  float64
	debugSingle bool
	skipStarved bool
	err         error
}

// defaultOptions returns the standard assembly configuration.
func defaultOptions() options {
	return options{
		validation: DefaultValidation,
		sampleCap:  DefaultSampleCap,
		augmentMax: DefaultAugmentMax,
		augmentMin: DefaultAugmentMin,
	}
}

// WithSeed fixes the run seed all augmentation seeds derive from.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithValidation overrides the validation fraction. Values outside (0, 0.5)
// are rejected: above one half the "validation" side would dominate.
func WithValidation(frac float64) Option {
	return func(o *options) {
		if frac <= 0 || frac >= 0.5 {
			o.err = fmt.Errorf("%w: fraction %v", ErrBadSplit, frac)
			return
		}
		o.validation = frac
	}
}

// WithSampleCap overrides the per-class training cap. Zero disables capping;
// negative values are an option violation.
func WithSampleCap(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: sample cap %d", ErrOptionViolation, n)
			return
		}
		o.sampleCap = n
	}
}

// WithAugmentation overrides the balance-curve bounds. The curve multiplies
// a class's real count by a factor sliding from max (thin classes) down to
// min (rich classes); max must be at least min and min non-negative.
func WithAugmentation(max, min float64) Option {
	return func(o *options) {
		if min < 0 || max < min {
			o.err = fmt.Errorf("%w: augmentation bounds max=%v min=%v",
				ErrOptionViolation, max, min)
			return
		}
		o.augmentMax = max
		o.augmentMin = min
	}
}

// WithDebugSingleSample caps every per-symbol key fetch at one row, so each
// closure path contributes at most one sample. Meant for pipeline smoke
// checks; the rest of the pipeline runs unchanged.
func WithDebugSingleSample() Option {
	return func(o *options) { o.debugSingle = true }
}

// WithSkipStarved drops classes whose closure reaches no stored sample
// instead of failing the build. Callers opting in should diff Stats.Classes
// against the model's leaders and surface the gap themselves.
func WithSkipStarved() Option {
	return func(o *options) { o.skipStarved = true }
}
