package gavui

import "math"

// Clamp01 limits v to [0, 1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snap returns the entry of allowed closest to v. Ties go to the earlier
// entry. Returns v unchanged when allowed is empty.
func Snap(v int, allowed []int) int {
	if len(allowed) == 0 {
		return v
	}
	best := allowed[0]
	for _, a := range allowed[1:] {
		if abs(a-v) < abs(best-v) {
			best = a
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// round2 rounds v to two decimal places.
func round2(v float32) float32 {
	return float32(math.Round(float64(v)*100) / 100)
}

// wrap returns v modulo n in [0, n), also for negative v.
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
