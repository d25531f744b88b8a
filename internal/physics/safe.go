package physics

import "math"

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SafeDiv divides, returning fallback on division by zero or a non-finite
// quotient. These safe variants keep transient arithmetic edge cases from
// escalating into full numerical-instability failures; they are not the
// primary error-reporting path.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	v := num / den
	if !Finite(v) {
		return fallback
	}
	return v
}

// SafeSqrt returns fallback for negative operands.
func SafeSqrt(x, fallback float64) float64 {
	if x < 0 {
		return fallback
	}
	v := math.Sqrt(x)
	if !Finite(v) {
		return fallback
	}
	return v
}

// SafePow returns fallback on domain violations (0 to a negative power, a
// negative base with a fractional exponent) or a non-finite result.
func SafePow(base, exp, fallback float64) float64 {
	if base == 0 && exp < 0 {
		return fallback
	}
	if base < 0 && exp != math.Trunc(exp) {
		return fallback
	}
	v := math.Pow(base, exp)
	if !Finite(v) {
		return fallback
	}
	return v
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
