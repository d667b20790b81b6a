package xform

import "math"

// Mat3 is a row-major 3×3 affine transform over 2D points (column vectors).
type Mat3 [3][3]float64

// IdentityMat returns the identity transform.
func IdentityMat() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationMat rotates counter-clockwise by deg degrees about the origin.
func RotationMat(deg float64) Mat3 {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// ReflectionMat mirrors across the axis through the origin at deg degrees.
func ReflectionMat(deg float64) Mat3 {
	rad := 2 * deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		{c, s, 0},
		{s, -c, 0},
		{0, 0, 1},
	}
}

// ScaleMat scales by sx horizontally and sy vertically.
func ScaleMat(sx, sy float64) Mat3 {
	return Mat3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// SkewMat shears by kx horizontally and ky vertically.
func SkewMat(kx, ky float64) Mat3 {
	return Mat3{
		{1, kx, 0},
		{ky, 1, 0},
		{0, 0, 1},
	}
}

// TranslationMat translates by (dx, dy).
func TranslationMat(dx, dy float64) Mat3 {
	return Mat3{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// Mul returns m·n, the transform applying n first and m second.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply maps the point (x, y) through m.
func (m Mat3) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2],
		m[1][0]*x + m[1][1]*y + m[1][2]
}
