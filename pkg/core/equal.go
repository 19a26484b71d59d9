package core

import "math"

// Epsilon is the default tolerance for floating point comparisons.
// Trigonometric constructors and matrix inversion accumulate round-off
// well above machine precision, so equality across the package is
// approximate.
const Epsilon = 1e-5

// EqualApprox reports whether a and b differ by less than eps.
func EqualApprox(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// EqualFloat reports whether a and b are equal within Epsilon.
func EqualFloat(a, b float64) bool {
	return EqualApprox(a, b, Epsilon)
}
