package scale

import "golang.org/x/exp/constraints"

// Clamp bounds t to [lo, hi]. The bounds may be given in either order.
func Clamp[T constraints.Float](t, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

// Lerp interpolates linearly between a and b. x is not clamped.
func Lerp[T constraints.Float](a, b, x T) T {
	return a + (b-a)*x
}

// Unlerp is the inverse of Lerp: it returns where v lies between a and b.
// A zero-length range maps to 0.
func Unlerp[T constraints.Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap scales v from the interval [fromA,fromB] onto [toA,toB].
func Remap[T constraints.Float](fromA, fromB, toA, toB, v T) T {
	return Lerp(toA, toB, Unlerp(fromA, fromB, v))
}

// ToUnitClamp returns a function that scales a number from the interval [rMin,rMax]
// to the unit interval ([0,1]), if the result falls outside [0,1], it is clamped
// to 0 or 1.
func ToUnitClamp(rMin, rMax float64) func(m float64) float64 {
	return func(m float64) float64 {
		return Clamp(Unlerp(rMin, rMax, m), 0, 1)
	}
}
