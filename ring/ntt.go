package ring

import (
	"github.com/sp301415/ringo-kyber/field"
	"github.com/sp301415/ringo-kyber/num"
)

const (
	// rootOfUnity is 17, a primitive N-th root of unity modulo q.
	rootOfUnity = 17
	// invNTTFactor is R^2 / 128 mod q.
	// It removes the 2^7 scaling of InvNTT and multiplies by R.
	invNTTFactor = 1441
)

// zetas[i] is R * 17^bitrev7(i) mod q, centered around zero.
var zetas = genZetas()

func genZetas() [N / 2]field.Element {
	var tw [N / 2]field.Element
	for i := range tw {
		z := num.ModExp(rootOfUnity, uint64(i), field.Q) * (field.MontgomeryR % field.Q) % field.Q
		tw[i] = field.Element(z)
		if tw[i] > field.Q/2 {
			tw[i] -= field.Q
		}
	}
	num.BitReverseInPlace(tw[:])
	return tw
}

// NTT returns the number-theoretic transform of p.
//
// Since 17 is only an N-th root of unity, the transform stops at degree-one
// factors: the output is 128 polynomials a_{2i} + a_{2i+1} X modulo
// X^2 - 17^(2 bitrev7(i) + 1), in bit-reversed order.
//
// Coefficients of p must be bounded by q in absolute value.
// Output coefficients are Barrett reduced.
func NTT(p Poly) Poly {
	k := 1
	for length := N / 2; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := field.MontgomeryMul(zeta, p.coeffs[j+length])
				p.set(j+length, p.coeffs[j]-t)
				p.set(j, p.coeffs[j]+t)
			}
		}
	}
	return p.BarrettReduce()
}

// InvNTT returns the inverse number-theoretic transform of p,
// multiplied by the Montgomery factor R = 2^16.
//
// Hence InvNTT(NTT(p)) = p * R, and InvNTT(MulNTT(NTT(a), NTT(b))) = a * b.
// Coefficients of p must be bounded by 3q in absolute value.
func InvNTT(p Poly) Poly {
	k := N/2 - 1
	for length := 2; length <= N/2; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.coeffs[j]
				p.set(j, field.BarrettReduce(t+p.coeffs[j+length]))
				p.set(j+length, field.MontgomeryMul(zeta, p.coeffs[j+length]-t))
			}
		}
	}

	for j := 0; j < N; j++ {
		p.set(j, field.MontgomeryMul(p.coeffs[j], invNTTFactor))
	}
	return p
}

// MulNTT returns the product of a and b in NTT representation,
// multiplied by R^(-1).
//
// Coefficients of a and b must be bounded by q in absolute value,
// which holds for outputs of NTT.
func MulNTT(a, b Poly) Poly {
	var pOut Poly
	for i := 0; i < N/4; i++ {
		zeta := zetas[N/4+i]
		pOut.baseMul(4*i, &a, &b, zeta)
		pOut.baseMul(4*i+2, &a, &b, -zeta)
	}
	return pOut
}

// baseMul sets coefficients k and k+1 of p to
// (a_k + a_{k+1} X)(b_k + b_{k+1} X) R^(-1) mod X^2 - zeta.
func (p *Poly) baseMul(k int, a, b *Poly, zeta field.Element) {
	a0, a1 := a.coeffs[k], a.coeffs[k+1]
	b0, b1 := b.coeffs[k], b.coeffs[k+1]

	p.set(k, field.MontgomeryMul(field.MontgomeryMul(a1, b1), zeta)+field.MontgomeryMul(a0, b0))
	p.set(k+1, field.MontgomeryMul(a0, b1)+field.MontgomeryMul(a1, b0))
}
