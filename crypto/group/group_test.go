package group

import "testing"

func TestScalarMultDistributesOverAdd(t *testing.T) {
	g := Generator()
	a, _ := RandomScalar()
	b, _ := RandomScalar()

	lhs := g.ScalarMult(a.Add(b))
	rhs := g.ScalarMult(a).Add(g.ScalarMult(b))

	if !lhs.Equal(rhs) {
		t.Fatal("[a+b]G != [a]G + [b]G")
	}
}

func TestPointRoundTrip(t *testing.T) {
	g := Generator()
	s, _ := RandomScalar()
	p := g.ScalarMult(s)

	encoded := p.Bytes()
	decoded, err := PointFromBytes(encoded)
	if err != nil {
		t.Fatalf("PointFromBytes: %v", err)
	}
	if !decoded.Equal(p) {
		t.Fatal("point round-trip mismatch")
	}
}

func TestLagrangeReconstructsSecretAtZero(t *testing.T) {
	// Build a degree-1 (threshold 2) polynomial f(x) = secret + a1*x and
	// confirm that combining any 2-of-3 shares in the exponent recovers
	// [secret]G.
	secret, _ := RandomScalar()
	a1, _ := RandomScalar()

	eval := func(x uint8) Scalar {
		xs := ScalarFromUint64(uint64(x))
		return secret.Add(a1.Mul(xs))
	}

	g := Generator()
	want := g.ScalarMult(secret)

	trySubset := func(indices []uint8) {
		acc := Point{}
		first := true
		for _, idx := range indices {
			share := g.ScalarMult(eval(idx))
			lambda := LagrangeCoefficientAtZero(idx, indices)
			term := share.ScalarMult(lambda)
			if first {
				acc = term
				first = false
			} else {
				acc = acc.Add(term)
			}
		}
		if !acc.Equal(want) {
			t.Fatalf("subset %v: combined share != [secret]G", indices)
		}
	}

	trySubset([]uint8{1, 2})
	trySubset([]uint8{1, 3})
	trySubset([]uint8{2, 3})
}
