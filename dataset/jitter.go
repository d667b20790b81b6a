package dataset

import (
	"math/rand"

	"github.com/katalvlaran/glyphtrain/xform"
)

// Jitter bounds. Perturbations stay small enough that the drawing remains a
// legible instance of its class.
const (
	jitterMaxRotation = 5.0 // degrees either way
	jitterMinScale    = 0.9 // per-axis shrink floor
	jitterMaxSkew     = 0.1 // shear either way
)

// Jitter returns the perturbation matrix for one augmentation seed: a small
// rotation, a per-axis shrink, or a shear, chosen and parameterized by the
// seed alone. Equal seeds yield equal matrices on every platform.
func Jitter(seed uint32) xform.Mat3 {
	rng := rand.New(rand.NewSource(int64(seed)))
	switch rng.Intn(3) {
	case 0:
		angle := (rng.Float64()*2 - 1) * jitterMaxRotation
		return xform.RotationMat(angle)
	case 1:
		sx := jitterMinScale + rng.Float64()*(1-jitterMinScale)
		sy := jitterMinScale + rng.Float64()*(1-jitterMinScale)
		return xform.ScaleMat(sx, sy)
	default:
		kx := (rng.Float64()*2 - 1) * jitterMaxSkew
		ky := (rng.Float64()*2 - 1) * jitterMaxSkew
		return xform.SkewMat(kx, ky)
	}
}
