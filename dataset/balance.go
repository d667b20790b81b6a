package dataset

import "math"

// Balance-curve shape constants. The curve is a logistic slide between the
// configured max and min factors, with the knee positioned so classes of a
// few dozen samples still receive meaningful top-up.
const (
	balanceBase    = 1.2
	balanceStretch = 0.05
)

// AugmentationAmount returns how many augmented copies a class with n real
// training samples receives. The multiplication factor follows a logistic
// curve from max (n near zero) down to min (n large); the returned count is
// floor(factor·n), so a rich class under a sub-one min factor still gains a
// proportional trickle rather than nothing.
func AugmentationAmount(n int, max, min float64) int {
	if n <= 0 {
		return 0
	}
	nominator := -2 * (max - min)
	denominator := 1 + math.Pow(balanceBase, -balanceStretch*float64(n))
	offset := min - nominator
	factor := nominator/denominator + offset
	return int(factor * float64(n))
}
