// Package ring implements the polynomial ring R_q = Z_q[X]/(X^N + 1)
// used by Kyber, with q = 3329 and N = 256.
package ring

import (
	"iter"

	"github.com/sp301415/ringo-kyber/field"
)

// N is the number of coefficients of a Poly.
const N = 256

// Poly is an element of R_q. Coefficient i is the coefficient of X^i.
//
// Poly is a value type: all exported methods leave the receiver untouched,
// and arithmetic never reduces coefficients implicitly.
// Callers must call BarrettReduce or Normalize before coefficients
// grow past the bounds accepted by package field.
//
// The same type holds polynomials in NTT representation.
type Poly struct {
	coeffs [N]field.Element
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// NewPoly creates a new Poly from its coefficients.
func NewPoly(coeffs [N]field.Element) Poly {
	return Poly{coeffs: coeffs}
}

// Coeff returns the coefficient of X^i.
// Panics if i is not in [0, N).
func (p Poly) Coeff(i int) field.Element {
	return p.coeffs[i]
}

// set assigns the coefficient of X^i.
// Only code building a fresh Poly in this package may call it.
func (p *Poly) set(i int, c field.Element) {
	p.coeffs[i] = c
}

// Coefficients returns a copy of the coefficients of p.
func (p Poly) Coefficients() [N]field.Element {
	return p.coeffs
}

// All returns a sequence of (i, coefficient of X^i) pairs in increasing order of i.
// The sequence can be iterated any number of times.
func (p Poly) All() iter.Seq2[int, field.Element] {
	return func(yield func(int, field.Element) bool) {
		for i, c := range p.coeffs {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Coeffs returns a sequence of the coefficients of p in increasing degree.
// The sequence can be iterated any number of times.
func (p Poly) Coeffs() iter.Seq[field.Element] {
	return func(yield func(field.Element) bool) {
		for _, c := range p.coeffs {
			if !yield(c) {
				return
			}
		}
	}
}

// Equal returns true if p and p1 have identical coefficients.
// Congruent but different representatives are not equal; see Normalize.
func (p Poly) Equal(p1 Poly) bool {
	return p.coeffs == p1.coeffs
}
