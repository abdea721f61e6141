// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/ids"
)

// AuthenticationEntry pairs a blind-signature proof with the ID of the
// Election authenticator it must be verified against -- a Vote may carry
// more than one when an election requires multiple independent issuers
// to certify the same anonymous key.
type AuthenticationEntry struct {
	AuthenticatorID string `cbor:"authenticator_id"`
	Proof           []byte `cbor:"proof"`
}

// Vote is a single cast ballot: an anonymous ephemeral signing key, the
// ballot it was cast on, the authenticator proof(s) certifying the voter
// was authorized to cast it, and the ElGamal-encrypted choice.
type Vote struct {
	IDValue        ids.Identifier        `cbor:"id"`
	ElectionID     ids.Identifier        `cbor:"election_id"`
	AnonymousKey   ed25519.PublicKey     `cbor:"anonymous_key"`
	BallotID       uuid.UUID             `cbor:"ballot_id"`
	Authentication []AuthenticationEntry `cbor:"authentication"`
	EncryptedVote  elgamal.Ciphertext    `cbor:"encrypted_vote"`
}

// Kind implements Transaction.
func (v Vote) Kind() ids.Type { return ids.Vote }

// ID implements Transaction.
func (v Vote) ID() ids.Identifier { return v.IDValue }

// Inputs implements Transaction: a Vote depends only on the Election it
// was cast in.
func (v Vote) Inputs() []ids.Identifier {
	return []ids.Identifier{v.ElectionID}
}

// SignerPublicKey implements Transaction: a Vote's envelope is signed by
// its own per-voter ephemeral anonymous_key.
func (v Vote) SignerPublicKey() (ed25519.PublicKey, bool) {
	return v.AnonymousKey, true
}
