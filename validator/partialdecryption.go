// Copyright 2025 Certen Protocol
package validator

import (
	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidatePartialDecryption checks every rule spelled out for this
// variant: the upstream reference names a Vote or Mix, voting has ended,
// a Mix upstream is the chain's final stage, the upstream index is in
// range, the declared trustee is on the roster with a matching public
// key, the identifier recomputes correctly, the trustee's KeyGenPublicKey
// registration agrees, and the Chaum-Pedersen share proof verifies. The
// envelope signature (signer = the producing trustee's registered key,
// externally resolved) is the caller's responsibility: resolve it with
// PartialDecryptionSignerKey and pass the result to Envelope.Verify.
func ValidatePartialDecryption(s store.Store, suite *certcrypto.Suite, p txn.PartialDecryption) error {
	if p.UpstreamID.Type != ids.Vote && p.UpstreamID.Type != ids.Mix {
		return ErrInvalidUpstreamID
	}
	if !p.UpstreamID.SameElection(p.ElectionID) {
		return ErrIdentifierBadComposition
	}

	election, err := getElection(s, p.ElectionID)
	if err != nil {
		return err
	}

	ended, err := votingEndExists(s, p.ElectionID)
	if err != nil {
		return err
	}
	if !ended {
		return ErrMissingVotingEndTransaction
	}

	ciphertext, err := resolveUpstreamCiphertext(s, election, p)
	if err != nil {
		return err
	}

	trustee, ok := election.Trustee(p.TrusteeID)
	if !ok {
		return &TrusteeDoesNotExistError{TrusteeID: p.TrusteeID}
	}
	if !trustee.PublicKey.Equal(p.TrusteePublicKey) {
		return &TrusteePublicKeyMismatchError{TrusteeID: p.TrusteeID}
	}

	expected := txn.BuildPartialDecryptionID(p.ElectionID, p.UpstreamID, trustee.Index)
	if !expected.Equal(p.ID()) {
		return ErrIdentifierBadComposition
	}

	kgpk, err := keyGenSigningKey(s, p.ElectionID, p.TrusteeID)
	if err != nil {
		return err
	}
	if !kgpk.TrusteePublicKey.Equal(p.TrusteePublicKey) {
		return &TrusteePublicKeyMismatchError{TrusteeID: p.TrusteeID}
	}

	if !certcrypto.VerifyPartialDecryptionShare(p.PartialDecryption, kgpk.PublicKeyProof, ciphertext) {
		return ErrPartialDecryptionProofFailed
	}

	return nil
}

// resolveUpstreamCiphertext locates the ciphertext p claims to be a
// partial decryption of: a Vote's own encrypted_vote (upstream_index must
// be 0), or one entry of the election's final Mix's reencryption list.
func resolveUpstreamCiphertext(s store.Store, election txn.Election, p txn.PartialDecryption) (elgamal.Ciphertext, error) {
	switch p.UpstreamID.Type {
	case ids.Vote:
		if p.UpstreamIndex != 0 {
			return elgamal.Ciphertext{}, ErrInvalidUpstreamIndex
		}
		envelope, err := s.GetVote(p.UpstreamID)
		if err != nil {
			return elgamal.Ciphertext{}, translateStoreError(err, p.UpstreamID)
		}
		vote, ok := envelope.Transaction.(txn.Vote)
		if !ok {
			return elgamal.Ciphertext{}, ErrWrongTransactionKind
		}
		return vote.EncryptedVote, nil

	case ids.Mix:
		if election.Mixnet == nil {
			return elgamal.Ciphertext{}, ErrMixnetNotConfigured
		}
		envelope, err := s.GetMix(p.UpstreamID)
		if err != nil {
			return elgamal.Ciphertext{}, translateStoreError(err, p.UpstreamID)
		}
		mix, ok := envelope.Transaction.(txn.Mix)
		if !ok {
			return elgamal.Ciphertext{}, ErrWrongTransactionKind
		}
		if uint32(mix.MixIndex) != election.Mixnet.NumShuffles-1 {
			return elgamal.Ciphertext{}, ErrWrongMixSelected
		}
		if int(p.UpstreamIndex) >= len(mix.Reencryption) {
			return elgamal.Ciphertext{}, ErrInvalidUpstreamIndex
		}
		return mix.Reencryption[p.UpstreamIndex], nil

	default:
		return elgamal.Ciphertext{}, ErrInvalidUpstreamID
	}
}

// PartialDecryptionSignerKey resolves the Ed25519 key a PartialDecryption
// transaction produced by trusteeID must be signed by.
func PartialDecryptionSignerKey(s store.Store, p txn.PartialDecryption) ([]byte, error) {
	kgpk, err := keyGenSigningKey(s, p.ElectionID, p.TrusteeID)
	if err != nil {
		return nil, err
	}
	return kgpk.SigningKey, nil
}
