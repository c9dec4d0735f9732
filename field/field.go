// Package field implements arithmetic modulo the Kyber prime q = 3329.
//
// Elements are signed 32-bit representatives that are not kept in [0, q).
// Each reduction documents the input magnitude it accepts and the range it
// returns, and callers are expected to chain reductions within these bounds.
// Inputs out of bounds silently wrap around, unless the package is built with
// the kyberdebug tag, in which case the reductions panic.
package field

// Element is an integer representing a residue modulo Q.
type Element int32

const (
	// Q is the prime modulus 3329 = 2^11 + 2^10 + 2^8 + 1.
	Q = 3329

	// BarrettShift is the shift S of the Barrett reduction.
	BarrettShift = 26
	// BarrettR is 2^BarrettShift.
	BarrettR = 1 << BarrettShift
	// BarrettMultiplier is floor(BarrettR / Q + 1/2).
	BarrettMultiplier = 20159
	// BarrettInputBound is the largest |x| such that
	// x * BarrettMultiplier + BarrettR / 2 fits in an int32.
	BarrettInputBound = (1<<31 - 1 - BarrettR>>1) / BarrettMultiplier

	// MontgomeryShift is the shift of the Montgomery radix.
	MontgomeryShift = 16
	// MontgomeryR is the Montgomery radix 2^16.
	MontgomeryR = 1 << MontgomeryShift
	// InverseOfModulusModR is Q^(-1) mod MontgomeryR, as a signed value.
	InverseOfModulusModR = -3327
	// MontgomeryRSquared is MontgomeryR^2 mod Q.
	MontgomeryRSquared = 1353
	// MontgomeryInputBound is the bound 2^15 * Q on |x| for MontgomeryReduce.
	MontgomeryInputBound = MontgomeryR / 2 * Q
)
