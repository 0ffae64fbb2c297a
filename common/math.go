package common

import "math"

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins, which keeps
// a camera at 0 for worlds smaller than the screen.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Snap floors v to a multiple of step.
func Snap(v float64, step int) float64 {
	if step <= 0 {
		return v
	}
	s := float64(step)
	return math.Floor(v/s) * s
}

// Round rounds half away from zero and converts to int.
func Round(v float64) int {
	return int(math.Round(v))
}
