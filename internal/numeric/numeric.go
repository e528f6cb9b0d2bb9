// Package numeric provides the small float helpers shared by the color
// conversions: angle wrapping, tolerant comparison, clamping and rounding.
package numeric

import "math"

// Epsilon is the tolerance used by ApproxEqual.
const Epsilon = 1e-9

// WrapAngle maps any finite angle in degrees into [0, 360).
// 360 wraps to 0 and negative zero is normalized to positive zero.
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Adding 360 to a tiny negative remainder rounds up to exactly 360.
	if deg >= 360 {
		deg -= 360
	}
	if deg == 0 {
		return 0
	}
	return deg
}

// WrapAngleSigned maps any finite angle in degrees into (-180, 180].
func WrapAngleSigned(deg float64) float64 {
	deg = WrapAngle(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// ApproxEqual reports whether a and b differ by at most Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// FractionToByte clamps f to [0, 1] and scales it to [0, 255], rounding
// half away from zero.
func FractionToByte(f float64) uint8 {
	//nolint:gosec // G115: value is clamped to [0,255] range
	return uint8(math.Round(Clamp(f, 0, 1) * 255))
}

// RoundTo rounds x to the given number of decimal places, half away from zero.
// Negative zero results are returned as positive zero.
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// InUnit reports whether f is a number in [0, 1]. NaN is rejected.
func InUnit(f float64) bool {
	return f >= 0 && f <= 1
}
