// Copyright 2025 Certen Protocol
//
// Package shuffle declares the interface the validator consumes to check a
// Mix transaction's shuffle proof. The mix-net shuffle proof itself is an
// external collaborator's concern, specified only by the interface the
// validator consumes -- a real implementation would build a zero-knowledge
// circuit attesting that the output ciphertext list is a permutation and
// re-randomization of the input list under the joint public key, but no
// such circuit is instantiated here.
package shuffle

import "github.com/certen/threshold-ballot/crypto/elgamal"

// Proof is an opaque shuffle-correctness proof attached to a Mix
// transaction. Its internal representation is a concern of whichever
// shuffle implementation produced it; the validator never inspects it
// beyond passing it to Verifier.Verify.
type Proof []byte

// Verifier checks that output is a permutation and re-randomization of
// input under jointKey, without revealing the permutation or the
// re-randomization factors.
type Verifier interface {
	Verify(jointKey []byte, input, output []elgamal.Ciphertext, proof Proof) (bool, error)
}

// NoopVerifier accepts any non-empty proof. It exists only so the
// validator's Mix pipeline and its tests have a concrete Verifier to run
// against in the absence of a real shuffle-proof circuit; it must never be
// wired into a production election node.
type NoopVerifier struct{}

// Verify implements Verifier by requiring a non-empty proof and otherwise
// always succeeding.
func (NoopVerifier) Verify(jointKey []byte, input, output []elgamal.Ciphertext, proof Proof) (bool, error) {
	if len(proof) == 0 {
		return false, nil
	}
	return true, nil
}
