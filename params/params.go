// Package params holds the parameter sets of the Kyber arithmetic layer
// and derives the reduction constants from them.
package params

import (
	"math"
	"math/bits"

	"github.com/sp301415/ringo-kyber/num"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// ParametersLiteral is a structure for ring and field parameters.
type ParametersLiteral struct {
	// Degree is the number of coefficients of a ring element.
	// Denoted as N in the paper.
	Degree int
	// Modulus is the prime modulus of the field.
	// Denoted as q in the paper.
	Modulus int32

	// BarrettShift is the shift of the Barrett reduction.
	// The Barrett radix is 2^BarrettShift.
	BarrettShift int
	// MontgomeryShift is the shift of the Montgomery reduction.
	// The Montgomery radix is 2^MontgomeryShift.
	MontgomeryShift int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.Degree < 2 || bits.OnesCount(uint(p.Degree)) != 1:
		panic("Degree must be a power of two")
	case p.Modulus <= 2 || p.Modulus%2 == 0:
		panic("Modulus must be an odd number larger than two")
	case !ring.IsPrime(uint64(p.Modulus)):
		panic("Modulus is not a prime")
	case p.BarrettShift <= 0 || p.BarrettShift > 30 || 1<<p.BarrettShift <= int64(p.Modulus):
		panic("Barrett radix must be larger than Modulus and at most 2^30")
	case p.MontgomeryShift <= 0 || p.MontgomeryShift > 30 || 1<<p.MontgomeryShift <= int64(p.Modulus):
		panic("Montgomery radix must be larger than Modulus and at most 2^30")
	case int64(p.Modulus)<<p.MontgomeryShift > math.MaxInt32:
		panic("Montgomery radix times Modulus must fit in an int32")
	}

	q := int64(p.Modulus)
	barrettR := int64(1) << p.BarrettShift
	montgomeryR := int64(1) << p.MontgomeryShift

	barrettMultiplier := (2*barrettR + q) / (2 * q)
	barrettInputBound := (math.MaxInt32 - barrettR>>1) / barrettMultiplier
	if barrettInputBound < q {
		panic("Barrett reduction cannot reduce canonical values")
	}

	montgomeryInverse := int64(num.ModInverse(uint64(q), uint64(montgomeryR)))
	if montgomeryInverse > montgomeryR/2 {
		montgomeryInverse -= montgomeryR
	}

	montgomeryRSquared := ring.ModExp(uint64(montgomeryR%q), 2, uint64(q))
	invNTTFactor := montgomeryRSquared * num.ModInverse(uint64(p.Degree/2), uint64(q)) % uint64(q)

	return Parameters{
		degree:  p.Degree,
		modulus: p.Modulus,

		barrettShift:      p.BarrettShift,
		barrettMultiplier: int32(barrettMultiplier),
		barrettInputBound: int32(barrettInputBound),

		montgomeryShift:    p.MontgomeryShift,
		montgomeryInverse:  int32(montgomeryInverse),
		montgomeryRSquared: int32(montgomeryRSquared),
		invNTTFactor:       int32(invNTTFactor),
	}
}

// Parameters is a read-only structure for ring and field parameters.
type Parameters struct {
	// degree is the number of coefficients of a ring element.
	degree int
	// modulus is the prime modulus of the field.
	modulus int32

	// barrettShift is the shift of the Barrett reduction.
	barrettShift int
	// barrettMultiplier is floor(2^barrettShift / modulus + 1/2).
	barrettMultiplier int32
	// barrettInputBound is the largest |x| the Barrett reduction accepts
	// without overflowing an int32.
	barrettInputBound int32

	// montgomeryShift is the shift of the Montgomery reduction.
	montgomeryShift int
	// montgomeryInverse is modulus^(-1) mod 2^montgomeryShift,
	// centered around zero.
	montgomeryInverse int32
	// montgomeryRSquared is 2^(2 montgomeryShift) mod modulus.
	montgomeryRSquared int32
	// invNTTFactor is montgomeryRSquared / (degree / 2) mod modulus.
	invNTTFactor int32
}

// Degree returns the number of coefficients of a ring element.
func (p Parameters) Degree() int {
	return p.degree
}

// LogDegree returns the base 2 logarithm of Degree.
func (p Parameters) LogDegree() int {
	return bits.Len(uint(p.degree)) - 1
}

// Modulus returns the prime modulus of the field.
func (p Parameters) Modulus() int32 {
	return p.modulus
}

// BarrettShift returns the shift of the Barrett reduction.
func (p Parameters) BarrettShift() int {
	return p.barrettShift
}

// BarrettMultiplier returns the multiplier of the Barrett reduction.
func (p Parameters) BarrettMultiplier() int32 {
	return p.barrettMultiplier
}

// BarrettInputBound returns the largest input magnitude of the Barrett reduction.
func (p Parameters) BarrettInputBound() int32 {
	return p.barrettInputBound
}

// MontgomeryShift returns the shift of the Montgomery reduction.
func (p Parameters) MontgomeryShift() int {
	return p.montgomeryShift
}

// MontgomeryInverse returns modulus^(-1) mod 2^MontgomeryShift, centered around zero.
func (p Parameters) MontgomeryInverse() int32 {
	return p.montgomeryInverse
}

// MontgomeryRSquared returns 2^(2 MontgomeryShift) mod modulus.
func (p Parameters) MontgomeryRSquared() int32 {
	return p.montgomeryRSquared
}

// MontgomeryInputBound returns the bound 2^(MontgomeryShift-1) * modulus
// on the input magnitude of the Montgomery reduction.
func (p Parameters) MontgomeryInputBound() int32 {
	return p.modulus << (p.montgomeryShift - 1)
}

// InvNTTFactor returns the scaling constant applied at the end of the inverse NTT.
func (p Parameters) InvNTTFactor() int32 {
	return p.invNTTFactor
}
