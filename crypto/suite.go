// Copyright 2025 Certen Protocol
//
// Package crypto composes the group, ElGamal, keygen, threshold, sign,
// authn, and shuffle packages into the single cryptographic adapter the
// validator depends on (C3). The validator never imports gnark-crypto
// directly and uses crypto/ed25519 only for the public key type -- every
// proof check and signature verification it needs goes through this
// package.
package crypto

import (
	"crypto/ed25519"

	"github.com/certen/threshold-ballot/crypto/authn"
	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/keygen"
	"github.com/certen/threshold-ballot/crypto/shuffle"
	"github.com/certen/threshold-ballot/crypto/sign"
	"github.com/certen/threshold-ballot/crypto/threshold"
)

// Suite is the cryptographic adapter a validator is constructed with. The
// default Suite (New) uses the BLS12-381 G1 group, an empty authenticator
// registry, and the no-op shuffle verifier documented in package shuffle;
// an election node wiring real authenticators or a shuffle circuit
// replaces those two fields only.
type Suite struct {
	Authenticators authn.Registry
	Shuffle        shuffle.Verifier
}

// New returns a Suite with no authenticators registered and a NoopVerifier
// for shuffle proofs; callers should set Authenticators before validating
// any Vote transactions.
func New() *Suite {
	return &Suite{
		Authenticators: authn.MapRegistry{},
		Shuffle:        shuffle.NoopVerifier{},
	}
}

// VerifyEnvelopeSignature checks an Ed25519 signature over a transaction's
// canonical encoding, used to enforce every transaction variant's signer
// invariant.
func VerifyEnvelopeSignature(publicKey ed25519.PublicKey, payload, signature []byte) error {
	return sign.Verify(sign.DomainTransaction, publicKey, payload, signature)
}

// VerifySchnorrProof checks a KeyGenPublicKey transaction's proof of
// knowledge of the trustee's secret share.
func VerifySchnorrProof(proof keygen.PublicKeyProof) bool {
	return proof.Verify()
}

// VerifyPartialDecryptionShare checks a PartialDecryption transaction's
// Chaum-Pedersen proof against the trustee's committed public key and the
// ciphertext it claims to be a partial decryption of.
func VerifyPartialDecryptionShare(share threshold.DecryptShare, proof keygen.PublicKeyProof, ciphertext elgamal.Ciphertext) bool {
	return share.Verify(proof, ciphertext)
}

// CombineShares reconstructs the plaintext from a quorum of verified
// partial decryption shares.
func CombineShares(ciphertext elgamal.Ciphertext, quorumThreshold int, shares []threshold.TrusteeShare) ([]byte, error) {
	return threshold.Combine(ciphertext, quorumThreshold, shares)
}

// VerifyAuthentication checks a Vote's authentication entry against the
// named authenticator in s.Authenticators.
func (s *Suite) VerifyAuthentication(authenticatorID string, anonymousKey, ballotID, entry []byte) (bool, error) {
	a, ok := s.Authenticators.Lookup(authenticatorID)
	if !ok {
		return false, nil
	}
	return a.Verify(anonymousKey, ballotID, entry)
}

// VerifyShuffle checks a Mix transaction's shuffle proof.
func (s *Suite) VerifyShuffle(jointKey []byte, input, output []elgamal.Ciphertext, proof shuffle.Proof) (bool, error) {
	return s.Shuffle.Verify(jointKey, input, output, proof)
}

// Generator returns the group's canonical base point, exposed for
// transaction constructors and test fixtures that need to derive a public
// key from a secret scalar without importing package group directly.
func Generator() group.Point {
	return group.Generator()
}
