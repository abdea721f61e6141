// Copyright 2025 Certen Protocol
package validator

import (
	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidateKeyGenPublicKey checks that k's trustee is on the election's
// roster, that its declared share matches the roster's committed public
// key for that trustee, and that its Schnorr proof of knowledge verifies.
// The envelope signature (signer = k.SigningKey, self-described) is the
// caller's responsibility.
func ValidateKeyGenPublicKey(s store.Store, suite *certcrypto.Suite, k txn.KeyGenPublicKey) error {
	election, err := getElection(s, k.ElectionID)
	if err != nil {
		return err
	}

	trustee, ok := election.Trustee(k.TrusteeID)
	if !ok {
		return &TrusteeDoesNotExistError{TrusteeID: k.TrusteeID}
	}
	if !trustee.PublicKey.Equal(k.TrusteePublicKey) {
		return &TrusteePublicKeyMismatchError{TrusteeID: k.TrusteeID}
	}
	if !k.PublicKeyProof.PublicKey.Equal(k.TrusteePublicKey) {
		return &TrusteePublicKeyMismatchError{TrusteeID: k.TrusteeID}
	}

	if !certcrypto.VerifySchnorrProof(k.PublicKeyProof) {
		return ErrKeyGenProofFailed
	}

	expected := txn.BuildKeyGenPublicKeyID(k.ElectionID, k.TrusteeID)
	if !expected.Equal(k.ID()) {
		return ErrIdentifierBadComposition
	}

	return nil
}
