// Copyright 2025 Certen Protocol
//
// Package threshold implements the partial-decryption share type and the
// quorum-reconstruction algorithm: each trustee
// publishes c1^{s_i} accompanied by a Chaum-Pedersen proof of equality of
// discrete logs with its keygen commitment, and any t-of-n honest shares
// combine via Lagrange interpolation into the plaintext point.
package threshold

import (
	"crypto/sha256"
	"fmt"

	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/keygen"
)

// DecryptShare is trustee i's partial decryption of a ciphertext's C1
// component, together with a non-interactive proof that the same secret
// exponent underlies both its keygen public key and this share:
// log_g(PublicKey) == log_C1(Share).
type DecryptShare struct {
	Share group.Point `cbor:"share"`

	CommitG  group.Point  `cbor:"commit_g"`  // t1 = [w]g
	CommitC1 group.Point  `cbor:"commit_c1"` // t2 = [w]C1
	Response group.Scalar `cbor:"response"`
}

// Produce builds a DecryptShare for secret (trustee i's share of the
// distributed private key) against ciphertext c1.
func Produce(secret group.Scalar, c1 group.Point) (DecryptShare, error) {
	share := c1.ScalarMult(secret)

	w, err := group.RandomNonZeroScalar()
	if err != nil {
		return DecryptShare{}, err
	}

	g := group.Generator()
	publicKey := g.ScalarMult(secret)
	commitG := g.ScalarMult(w)
	commitC1 := c1.ScalarMult(w)

	e := dleqChallenge(g, publicKey, c1, share, commitG, commitC1)
	response := w.Add(e.Mul(secret))

	return DecryptShare{
		Share:    share,
		CommitG:  commitG,
		CommitC1: commitC1,
		Response: response,
	}, nil
}

// Verify checks the Chaum-Pedersen equality-of-discrete-logs proof binding
// this share to the trustee's committed keygen public key and the
// ciphertext it was computed against:
//
//	[z]g  == t1 + [e]PublicKey
//	[z]C1 == t2 + [e]Share
func (d DecryptShare) Verify(proof keygen.PublicKeyProof, ciphertext elgamal.Ciphertext) bool {
	if !proof.Verify() {
		return false
	}

	g := group.Generator()
	e := dleqChallenge(g, proof.PublicKey, ciphertext.C1, d.Share, d.CommitG, d.CommitC1)

	lhsG := g.ScalarMult(d.Response)
	rhsG := d.CommitG.Add(proof.PublicKey.ScalarMult(e))
	if !lhsG.Equal(rhsG) {
		return false
	}

	lhsC1 := ciphertext.C1.ScalarMult(d.Response)
	rhsC1 := d.CommitC1.Add(d.Share.ScalarMult(e))
	return lhsC1.Equal(rhsC1)
}

func dleqChallenge(g, publicKey, c1, share, commitG, commitC1 group.Point) group.Scalar {
	h := sha256.New()
	h.Write([]byte("CERTEN_BALLOT_DLEQ_V1"))
	for _, p := range []group.Point{g, publicKey, c1, share, commitG, commitC1} {
		h.Write(p.Bytes())
	}
	return group.ScalarFromBytes(h.Sum(nil))
}

// TrusteeShare pairs a DecryptShare with the Election-declared index of
// the trustee that produced it; the threshold combiner's iteration and
// Lagrange coefficients are indexed on this value, never on the order
// shares happen to arrive or the order a Decryption transaction lists
// trustee UUIDs in.
type TrusteeShare struct {
	Index uint8
	Share DecryptShare
}

// Combine reconstructs the plaintext bytes from a quorum of verified
// shares. shares must be in the Election's declared trustee order,
// restricted to the trustees present in the quorum -- not shares' arrival
// order and not the order a Decryption transaction's trustee list names --
// so that any two honest validators combining the same quorum agree
// bit-for-bit (property 5, "order independence up to protocol").
func Combine(ciphertext elgamal.Ciphertext, threshold int, shares []TrusteeShare) ([]byte, error) {
	if len(shares) < threshold {
		return nil, &NotEnoughSharesError{Required: threshold, Got: len(shares)}
	}

	indices := make([]uint8, len(shares))
	for i, s := range shares {
		indices[i] = s.Index
	}

	var combined group.Point
	for i, s := range shares {
		lambda := group.LagrangeCoefficientAtZero(s.Index, indices)
		term := s.Share.Share.ScalarMult(lambda)
		if i == 0 {
			combined = term
		} else {
			combined = combined.Add(term)
		}
	}

	plainPoint := ciphertext.C2.Sub(combined)

	plaintext, err := elgamal.DecodeFromPoint(plainPoint)
	if err != nil {
		return nil, &DecodingError{Inner: err}
	}
	return plaintext, nil
}

// NotEnoughSharesError reports that fewer than the threshold's worth of
// verified shares were supplied to Combine.
type NotEnoughSharesError struct {
	Required int
	Got      int
}

func (e *NotEnoughSharesError) Error() string {
	return fmt.Sprintf("threshold: not enough shares: required %d, got %d", e.Required, e.Got)
}

// DecodingError wraps a failure to decode the reconstructed plaintext
// point back into bytes.
type DecodingError struct {
	Inner error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("threshold: plaintext decoding failed: %v", e.Inner)
}

func (e *DecodingError) Unwrap() error {
	return e.Inner
}
