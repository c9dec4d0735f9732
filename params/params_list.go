package params

var (
	// ParamsKyber is the parameter set shared by Kyber512, Kyber768 and Kyber1024.
	// It matches the constants of packages field and ring.
	ParamsKyber = ParametersLiteral{
		Degree:  1 << 8,
		Modulus: 3329,

		BarrettShift:    26,
		MontgomeryShift: 16,
	}
)
