package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for values near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsPositiveFinite reports whether x is finite and strictly greater than zero.
// Frequencies and reference frequencies must satisfy this before a logarithm
// is taken of their ratio.
func IsPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// InUnitInterval reports whether x lies in the half-open interval (0, 1].
// The upper bound is widened by slack to absorb rounding.
func InUnitInterval(x, slack float64) bool {
	return x > 0 && x <= 1+slack
}

// WrapAngle maps theta into [0, 2π).
func WrapAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi

	w := math.Mod(theta, twoPi)
	if w < 0 {
		w += twoPi
	}

	// Mod of a tiny negative value can round up to exactly 2π.
	if w >= twoPi {
		w = 0
	}

	return w
}
