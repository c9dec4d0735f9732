// Package num implements various utility functions regarding numeric types.
package num

import "golang.org/x/exp/constraints"

// ModInverse returns the modular inverse of x modulo m.
// Output is always in [0, m).
// Panics if x and m are not coprime.
func ModInverse(x, m uint64) uint64 {
	x %= m

	a, b := int64(x), int64(m)
	u, v := int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, u-q*v
	}

	if a != 1 {
		panic("modular inverse does not exist")
	}

	return uint64(Mod(u, int64(m)))
}

// ModExp returns x^y mod q.
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1)
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = (r * x) % q
		}
		x = (x * x) % q
		y >>= 1
	}
	return r
}

// Mod returns the residue of x modulo m in [0, m).
// Unlike the % operator, the output is non-negative for negative x.
func Mod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// BitReverse returns the lowest bitLen bits of x in reversed order.
func BitReverse(x, bitLen int) int {
	var r int
	for i := 0; i < bitLen; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// BitReverseInPlace reorders v into bit-reversal order in-place.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}
