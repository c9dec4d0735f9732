package field

// BarrettReduce returns y with y = x (mod Q) and |y| <= (Q + 1) / 2.
//
// x must satisfy |x| <= BarrettInputBound, otherwise x * BarrettMultiplier
// overflows and the result is meaningless.
func BarrettReduce(x Element) Element {
	if debug && (x > BarrettInputBound || x < -BarrettInputBound) {
		panic("barrett reduction input out of range")
	}

	// quotient is round(x / Q), computed as (x * 20159 + 2^25) >> 26.
	quotient := (x*BarrettMultiplier + BarrettR>>1) >> BarrettShift
	return x - quotient*Q
}

// MontgomeryReduce returns y with y = x * 2^(-16) (mod Q).
//
// For |x| <= MontgomeryInputBound, y lies in (-3Q/2, Q/2].
func MontgomeryReduce(x Element) Element {
	if debug && (x > MontgomeryInputBound || x < -MontgomeryInputBound) {
		panic("montgomery reduction input out of range")
	}

	// t = x * Q^(-1) mod R, so that x - t * Q is divisible by R.
	t := (int64(x) * InverseOfModulusModR) & (MontgomeryR - 1)
	return (x - Element(t)*Q) >> MontgomeryShift
}

// ToMontgomery returns x * 2^16 mod Q, that is, x lifted to Montgomery domain.
//
// Since MontgomeryReduce(x * R^2) = x * R^2 * R^(-1) = x * R, this is a single
// Montgomery reduction of x * 1353.
func ToMontgomery(x Element) Element {
	if debug && (x > MontgomeryInputBound/MontgomeryRSquared || x < -MontgomeryInputBound/MontgomeryRSquared) {
		panic("montgomery conversion input out of range")
	}
	return MontgomeryReduce(MontgomeryRSquared * x)
}

// MontgomeryMul returns a * b * 2^(-16) mod Q.
// If one of the operands is in Montgomery domain, the result is the plain product.
//
// |a * b| must not exceed MontgomeryInputBound.
func MontgomeryMul(a, b Element) Element {
	if debug && (int64(a)*int64(b) > MontgomeryInputBound || int64(a)*int64(b) < -MontgomeryInputBound) {
		panic("montgomery multiplication input out of range")
	}
	return MontgomeryReduce(a * b)
}

// Normalize returns the canonical representative of x in [0, Q).
// x has the same precondition as in BarrettReduce.
func Normalize(x Element) Element {
	y := BarrettReduce(x)
	// y >> 31 is all ones iff y is negative.
	y += (y >> 31) & Q
	return y
}
