// Copyright 2025 Certen Protocol
package validator

import (
	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidateMix checks that m's election has voting closed and a mixnet
// configured, that m's index is in range, that its recomputed identifier
// matches, that its producing trustee is on the roster, and that its
// shuffle proof verifies against the expected input ciphertexts (every
// Vote's encrypted_vote in canonical order for mix 0, or the previous
// stage's output otherwise) and its own reencryption as output. The
// envelope signature (signer = the producing trustee's registered key,
// externally resolved) is the caller's responsibility: resolve it with
// MixSignerKey and pass the result to Envelope.Verify.
func ValidateMix(s store.Store, suite *certcrypto.Suite, m txn.Mix) error {
	election, err := getElection(s, m.ElectionID)
	if err != nil {
		return err
	}
	if election.Mixnet == nil {
		return ErrMixnetNotConfigured
	}
	if uint32(m.MixIndex) >= election.Mixnet.NumShuffles {
		return ErrInvalidUpstreamIndex
	}

	ended, err := votingEndExists(s, m.ElectionID)
	if err != nil {
		return err
	}
	if !ended {
		return ErrMissingVotingEndTransaction
	}

	if _, ok := election.Trustee(m.TrusteeID); !ok {
		return &TrusteeDoesNotExistError{TrusteeID: m.TrusteeID}
	}

	expected := txn.BuildMixID(m.ElectionID, m.MixIndex, m.TrusteeID)
	if !expected.Equal(m.ID()) {
		return ErrIdentifierBadComposition
	}

	input, err := mixInput(s, m.ElectionID, m.MixIndex)
	if err != nil {
		return err
	}
	if len(input) != len(m.Reencryption) {
		return ErrMixInputMismatch
	}

	joint := jointPublicKey(election)
	verified, err := suite.VerifyShuffle(joint.Bytes(), input, m.Reencryption, m.Proof)
	if err != nil {
		return err
	}
	if !verified {
		return ErrShuffleProofFailed
	}

	return nil
}

// mixInput resolves the expected input ciphertext list for mix stage
// mixIndex: the canonical-order set of all Votes when mixIndex is 0, or
// the previous stage's recorded output otherwise.
func mixInput(s store.Store, electionID ids.Identifier, mixIndex uint8) ([]elgamal.Ciphertext, error) {
	if mixIndex == 0 {
		votes, err := canonicalVotes(s, electionID)
		if err != nil {
			return nil, err
		}
		out := make([]elgamal.Ciphertext, len(votes))
		for i, v := range votes {
			out[i] = v.EncryptedVote
		}
		return out, nil
	}

	previous, err := findMixByIndex(s, electionID, mixIndex-1)
	if err != nil {
		return nil, err
	}
	return previous.Reencryption, nil
}

// MixSignerKey resolves the Ed25519 key a Mix transaction produced by
// trusteeID must be signed by: the trustee's registered KeyGenPublicKey
// signing key.
func MixSignerKey(s store.Store, m txn.Mix) ([]byte, error) {
	kgpk, err := keyGenSigningKey(s, m.ElectionID, m.TrusteeID)
	if err != nil {
		return nil, err
	}
	return kgpk.SigningKey, nil
}
