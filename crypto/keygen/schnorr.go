// Copyright 2025 Certen Protocol
//
// Package keygen implements the per-trustee commitment a KeyGenPublicKey
// transaction carries: a Schnorr proof of knowledge of the secret exponent
// behind the trustee's share of the joint ElGamal public key. The
// PartialDecryption's Chaum-Pedersen proof (package threshold) is checked
// against the PublicKey committed here.
package keygen

import (
	"crypto/sha256"

	"github.com/certen/threshold-ballot/crypto/group"
)

// PublicKeyProof is a trustee's non-interactive Schnorr proof of knowledge
// of the secret scalar s such that PublicKey = [s]g.
type PublicKeyProof struct {
	PublicKey  group.Point
	Commitment group.Point // R = [w]g for a fresh random w
	Response   group.Scalar // z = w + e*s
}

// Prove builds a PublicKeyProof for secret, whose public counterpart is
// [secret]g.
func Prove(secret group.Scalar) (PublicKeyProof, error) {
	g := group.Generator()
	publicKey := g.ScalarMult(secret)

	w, err := group.RandomNonZeroScalar()
	if err != nil {
		return PublicKeyProof{}, err
	}
	commitment := g.ScalarMult(w)

	e := challenge(g, publicKey, commitment)
	response := w.Add(e.Mul(secret))

	return PublicKeyProof{
		PublicKey:  publicKey,
		Commitment: commitment,
		Response:   response,
	}, nil
}

// Verify checks the Schnorr equation [z]g == R + [e]PublicKey.
func (proof PublicKeyProof) Verify() bool {
	g := group.Generator()
	e := challenge(g, proof.PublicKey, proof.Commitment)

	lhs := g.ScalarMult(proof.Response)
	rhs := proof.Commitment.Add(proof.PublicKey.ScalarMult(e))
	return lhs.Equal(rhs)
}

// challenge derives the Fiat-Shamir challenge from the statement and
// commitment, domain-separated from the DLEQ challenge used in package
// threshold so the two proof types can never be confused for one another.
func challenge(g, publicKey, commitment group.Point) group.Scalar {
	h := sha256.New()
	h.Write([]byte("CERTEN_BALLOT_SCHNORR_POK_V1"))
	h.Write(g.Bytes())
	h.Write(publicKey.Bytes())
	h.Write(commitment.Bytes())
	return group.ScalarFromBytes(h.Sum(nil))
}
