// Copyright 2025 Certen Protocol

package group

// LagrangeCoefficientAtZero computes the Lagrange basis coefficient for
// index `forIndex` among the full set `indices`, evaluated at x=0. This is
// the interpolation step the threshold decryption engine (C6) uses to
// recombine a quorum of partial decryptions without ever reconstructing
// the joint secret key.
//
//	lambda_i = product over j != i of ( -x_j / (x_i - x_j) )
func LagrangeCoefficientAtZero(forIndex uint8, indices []uint8) Scalar {
	xi := ScalarFromUint64(uint64(forIndex))

	numerator := ScalarFromUint64(1)
	denominator := ScalarFromUint64(1)

	for _, j := range indices {
		if j == forIndex {
			continue
		}
		xj := ScalarFromUint64(uint64(j))
		numerator = numerator.Mul(xj.Neg())
		denominator = denominator.Mul(xi.Sub(xj))
	}

	return numerator.Mul(denominator.Inverse())
}
