package geom

import "golang.org/x/exp/constraints"

// AbsDiff returns |a - b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Mod returns a modulo m with the sign of m, so Mod(-1, 4) == 3.
//
// Precondition: m != 0.
func Mod[T constraints.Signed](a, m T) T {
	r := a % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of the given values, or 0 when any
// value is 0 or none are given.
func LCM[T constraints.Integer](vals ...T) T {
	if len(vals) == 0 {
		return 0
	}
	out := vals[0]
	for _, v := range vals[1:] {
		if out == 0 || v == 0 {
			return 0
		}
		out = out / GCD(out, v) * v
	}
	if out < 0 {
		return -out
	}
	return out
}
