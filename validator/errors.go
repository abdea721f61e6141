// Copyright 2025 Certen Protocol
//
// Package validator implements the per-variant validate_tx pipelines (C5):
// pure functions of a transaction and a store snapshot that check every
// structural, reference, authorization, cryptographic, and threshold
// invariant a transaction kind carries, returning the first violation
// found rather than accumulating a report.
package validator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/ids"
)

// Structural errors. These are package ids's own sentinel values,
// re-exported here so callers can errors.Is against the validator's
// taxonomy for identifier problems detected by either package. A kind-tag
// disagreement found by txn.DecodeEnvelope is reported with
// txn.ErrUnknownTransactionType, which is a distinct value.
var (
	ErrIdentifierBadComposition = ids.ErrIdentifierBadComposition
	ErrBadHexEncoding           = ids.ErrBadHexEncoding
	ErrUnknownTransactionType   = ids.ErrUnknownTransactionType
)

// TransactionNotFoundError reports that a referenced predecessor does not
// exist in the store.
type TransactionNotFoundError struct {
	ID ids.Identifier
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("validator: transaction not found: %s", e.ID)
}

// ErrWrongTransactionKind is returned when a store accessor resolves an id
// to a transaction of an unexpected kind.
var ErrWrongTransactionKind = errors.New("validator: wrong transaction kind")

// ErrMissingVotingEndTransaction is returned when a PartialDecryption or
// Decryption is validated before the election's VotingEnd exists.
var ErrMissingVotingEndTransaction = errors.New("validator: voting has not ended")

// ErrInvalidUpstreamID is returned when a PartialDecryption's upstream_id
// does not name a Vote or Mix.
var ErrInvalidUpstreamID = errors.New("validator: invalid upstream id")

// ErrInvalidUpstreamIndex is returned when upstream_index is out of range
// for the kind of upstream ciphertext source it names.
var ErrInvalidUpstreamIndex = errors.New("validator: invalid upstream index")

// ErrWrongMixSelected is returned when a PartialDecryption targets a Mix
// stage other than the final one in the chain.
var ErrWrongMixSelected = errors.New("validator: partial decryption must target the final mix")

// ErrBadSignature is returned when an envelope's signature does not
// verify under its resolved signer key.
var ErrBadSignature = errors.New("validator: bad signature")

// TrusteeDoesNotExistError reports that a UUID does not name any trustee
// in the relevant Election.
type TrusteeDoesNotExistError struct {
	TrusteeID uuid.UUID
}

func (e *TrusteeDoesNotExistError) Error() string {
	return fmt.Sprintf("validator: trustee does not exist: %s", e.TrusteeID)
}

// TrusteePublicKeyMismatchError reports that a transaction's declared
// trustee public key does not match the one registered for that trustee.
type TrusteePublicKeyMismatchError struct {
	TrusteeID uuid.UUID
}

func (e *TrusteePublicKeyMismatchError) Error() string {
	return fmt.Sprintf("validator: trustee public key mismatch: %s", e.TrusteeID)
}

// ErrPartialDecryptionProofFailed is returned when a DecryptShare's
// Chaum-Pedersen proof fails to verify.
var ErrPartialDecryptionProofFailed = errors.New("validator: partial decryption proof failed")

// ErrKeyGenProofFailed is returned when a KeyGenPublicKey's Schnorr proof
// of knowledge fails to verify. The documented cryptographic-error
// taxonomy enumerates partial-decryption, shuffle, and authenticator
// proof failures but has no separate tag for a keygen commitment's own
// proof of knowledge; this adds one member rather than overloading
// ErrPartialDecryptionProofFailed for an unrelated proof system (see
// DESIGN.md).
var ErrKeyGenProofFailed = errors.New("validator: keygen public key proof failed")

// ErrShuffleProofFailed is returned when a Mix's shuffle proof fails to
// verify.
var ErrShuffleProofFailed = errors.New("validator: shuffle proof failed")

// ErrAuthenticatorProofFailed is returned when a Vote's authentication
// entry fails to verify against its named authenticator.
var ErrAuthenticatorProofFailed = errors.New("validator: authenticator proof failed")

// NotEnoughSharesError reports that a Decryption lists fewer trustees
// than the election's threshold requires.
type NotEnoughSharesError struct {
	Required int
	Got      int
}

func (e *NotEnoughSharesError) Error() string {
	return fmt.Sprintf("validator: not enough shares: required %d, got %d", e.Required, e.Got)
}

// VoteDecryptionFailedError wraps a failure of the threshold combiner
// itself (distinct from a mismatch against the claimed plaintext).
type VoteDecryptionFailedError struct {
	Inner error
}

func (e *VoteDecryptionFailedError) Error() string {
	return fmt.Sprintf("validator: vote decryption failed: %v", e.Inner)
}

func (e *VoteDecryptionFailedError) Unwrap() error {
	return e.Inner
}

// ErrVoteDecryptionMismatch is returned when the threshold combiner
// succeeds but its output disagrees with the Decryption's claimed bytes.
var ErrVoteDecryptionMismatch = errors.New("validator: vote decryption mismatch")

// ErrElectionInvalid is returned when an Election transaction violates one
// of its own structural invariants (ballot/trustee/threshold shape), and
// when a Decryption lists the same trustee more than once.
var ErrElectionInvalid = errors.New("validator: election is malformed")

// ErrBallotNotListed is returned when a Vote names a ballot_id the
// Election did not declare.
var ErrBallotNotListed = errors.New("validator: ballot not listed in election")

// ErrAuthenticatorNotConfigured is returned when a Vote's authentication
// entry names an authenticator the Election did not configure.
var ErrAuthenticatorNotConfigured = errors.New("validator: authenticator not configured for election")

// ErrVotingEndAlreadyExists is returned when a second VotingEnd is
// validated against an election that already has one.
var ErrVotingEndAlreadyExists = errors.New("validator: voting end already recorded")

// ErrMixnetNotConfigured is returned when a Mix or a PartialDecryption
// targeting a Mix is validated against an election with no mixnet config.
var ErrMixnetNotConfigured = errors.New("validator: election has no mixnet configured")

// ErrMixInputMismatch is returned when a Mix's reencryption list does not
// have the same length as the expected predecessor ciphertexts (all Votes
// for mix 0, or the previous Mix's output otherwise).
var ErrMixInputMismatch = errors.New("validator: mix input does not match expected predecessor ciphertexts")

// ErrDecryptionAlreadyExists is returned when a second Decryption is
// validated for a Vote that already has one.
var ErrDecryptionAlreadyExists = errors.New("validator: decryption already recorded for this vote")

// ErrMalformedCiphertext is returned when a Vote's encrypted_vote is not a
// well-formed Ciphertext pair (either component is the identity point).
var ErrMalformedCiphertext = errors.New("validator: malformed ciphertext")

// ErrMixStageNotFound is returned when a Mix (for its predecessor stage)
// or a Decryption (for the final stage) needs the Mix transaction at a
// mix-net stage index and there is not exactly one on record.
var ErrMixStageNotFound = errors.New("validator: referenced mix stage not found")
