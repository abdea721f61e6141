// Copyright 2025 Certen Protocol
package validator

import (
	"crypto/ed25519"
	"fmt"

	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// Validator runs the per-variant validate_tx pipelines against a store
// snapshot and a cryptographic adapter. It is pure and single-threaded
// per invocation: Validate never mutates the store it reads from, and an
// embedder may run validations against disjoint stores concurrently
// without any coordination (multiple validations against the same store
// must still be serialized by the embedder's own "validate-then-insert
// atomically" discipline).
type Validator struct {
	Store store.Store
	Suite *certcrypto.Suite
}

// New builds a Validator over s using suite for every cryptographic
// check.
func New(s store.Store, suite *certcrypto.Suite) *Validator {
	return &Validator{Store: s, Suite: suite}
}

// Validate first checks envelope's signature against whichever signer the
// variant (or this validator, for the externally-resolved cases) names,
// then dispatches it to its variant's pipeline.
func (v *Validator) Validate(envelope txn.Envelope) error {
	signer, err := v.resolveSigner(envelope)
	if err != nil {
		return err
	}
	if err := envelope.Verify(signer); err != nil {
		return ErrBadSignature
	}

	switch tx := envelope.Transaction.(type) {
	case txn.Election:
		return ValidateElection(tx)
	case txn.KeyGenPublicKey:
		return ValidateKeyGenPublicKey(v.Store, v.Suite, tx)
	case txn.Vote:
		return ValidateVote(v.Store, v.Suite, tx)
	case txn.VotingEnd:
		return ValidateVotingEnd(v.Store, tx)
	case txn.Mix:
		return ValidateMix(v.Store, v.Suite, tx)
	case txn.PartialDecryption:
		return ValidatePartialDecryption(v.Store, v.Suite, tx)
	case txn.Decryption:
		return ValidateDecryption(v.Store, v.Suite, tx)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownTransactionType, tx)
	}
}

// resolveSigner returns the Ed25519 key envelope's signature must verify
// under: the transaction's own self-described key when it has one, or
// this validator's externally-resolved key for the variants whose signer
// is the election authority or a trustee looked up by id.
func (v *Validator) resolveSigner(envelope txn.Envelope) (ed25519.PublicKey, error) {
	if key, ok := envelope.Transaction.SignerPublicKey(); ok {
		return key, nil
	}

	switch tx := envelope.Transaction.(type) {
	case txn.VotingEnd:
		return ElectionAuthorityKey(v.Store, tx.ElectionID)
	case txn.Decryption:
		return ElectionAuthorityKey(v.Store, tx.ElectionID)
	case txn.Mix:
		return MixSignerKey(v.Store, tx)
	case txn.PartialDecryption:
		return PartialDecryptionSignerKey(v.Store, tx)
	default:
		return nil, fmt.Errorf("%w: no externally-resolved signer for %T", ErrUnknownTransactionType, tx)
	}
}
