// Copyright 2025 Certen Protocol
package validator

import (
	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidateVote checks that v's ballot is listed by its election, that
// every authentication entry verifies against a configured authenticator,
// and that its encrypted_vote is a well-formed ciphertext pair. The
// envelope signature (signer = v.AnonymousKey, self-described) is the
// caller's responsibility.
func ValidateVote(s store.Store, suite *certcrypto.Suite, v txn.Vote) error {
	election, err := getElection(s, v.ElectionID)
	if err != nil {
		return err
	}

	if !election.HasBallot(v.BallotID) {
		return ErrBallotNotListed
	}

	for _, entry := range v.Authentication {
		if !election.HasAuthenticator(entry.AuthenticatorID) {
			return ErrAuthenticatorNotConfigured
		}
		ballotID, _ := v.BallotID.MarshalBinary()
		ok, err := suite.VerifyAuthentication(entry.AuthenticatorID, v.AnonymousKey, ballotID, entry.Proof)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAuthenticatorProofFailed
		}
	}

	if !wellFormedCiphertext(v.EncryptedVote) {
		return ErrMalformedCiphertext
	}

	return nil
}
