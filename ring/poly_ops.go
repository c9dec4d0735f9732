package ring

import "github.com/sp301415/ringo-kyber/field"

// Add returns p + p1. Does not reduce coefficients.
func (p Poly) Add(p1 Poly) Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, p.coeffs[i]+p1.coeffs[i])
	}
	return pOut
}

// Sub returns p - p1. Does not reduce coefficients.
func (p Poly) Sub(p1 Poly) Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, p.coeffs[i]-p1.coeffs[i])
	}
	return pOut
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, -p.coeffs[i])
	}
	return pOut
}

// BarrettReduce returns p with each coefficient Barrett reduced,
// so that coefficients are bounded by (q+1)/2 in absolute value.
func (p Poly) BarrettReduce() Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, field.BarrettReduce(p.coeffs[i]))
	}
	return pOut
}

// Normalize returns p with coefficients in [0, q).
func (p Poly) Normalize() Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, field.Normalize(p.coeffs[i]))
	}
	return pOut
}

// ToMontgomery returns p multiplied by the Montgomery factor 2^16.
func (p Poly) ToMontgomery() Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, field.ToMontgomery(p.coeffs[i]))
	}
	return pOut
}

// FromMontgomery returns p multiplied by 2^(-16).
func (p Poly) FromMontgomery() Poly {
	var pOut Poly
	for i := 0; i < N; i++ {
		pOut.set(i, field.MontgomeryReduce(p.coeffs[i]))
	}
	return pOut
}
