package common

import "math"

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// NearlyZero reports whether v is within eps of zero.
func NearlyZero(v, eps float64) bool {
	return math.Abs(v) < eps
}
