package core

import "math"

const defaultEpsilon = 1e-12

// Pi is π narrowed to single precision.
const Pi float32 = math.Pi

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp32 is Clamp for single-precision values.
func Clamp32(value, min, max float32) float32 {
	return float32(Clamp(float64(value), float64(min), float64(max)))
}

// NearlyEqual reports whether a and b are equal within eps.
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

// NearlyEqual32 reports whether two single-precision values are equal within eps.
func NearlyEqual32(a, b, eps float32) bool {
	return NearlyEqual(float64(a), float64(b), float64(eps))
}

// Sin32 returns sin(x) rounded to single precision.
func Sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Fmod32 returns the floating-point remainder of x/y with the sign of x,
// like C fmodf. For x >= 0 and y > 0 the result lies in [0, y).
func Fmod32(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

// RoundHalfUp rounds a non-negative value to the nearest integer, halves up.
func RoundHalfUp(x float32) int {
	return int(x + 0.5)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
