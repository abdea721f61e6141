// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/ids"
)

// Trustee is a single member of an Election's trustee roster: a Lagrange
// index in [1,255], a UUID identity, and the ElGamal group element that
// is this trustee's share of the joint public key. The trustee's
// KeyGenPublicKey transaction must declare this same element and carries
// the proof of knowledge of its secret exponent.
type Trustee struct {
	ID        uuid.UUID   `cbor:"id"`
	Index     uint8       `cbor:"index"`
	PublicKey group.Point `cbor:"public_key"`
}

// MixnetConfig declares that an election routes ciphertexts through a
// chain of shuffles before decryption, and how long that chain is.
type MixnetConfig struct {
	NumShuffles uint32 `cbor:"num_shuffles"`
}

// Election is the root transaction of an election's log: authority
// identity, ballot roster, configured authenticators, trustee roster and
// threshold, and optional mix-net configuration. Immutable post-creation.
type Election struct {
	IDValue        ids.Identifier    `cbor:"id"`
	AuthorityKey   ed25519.PublicKey `cbor:"authority_public_key"`
	BallotIDs      []uuid.UUID       `cbor:"ballot_ids"`
	Authenticators []string          `cbor:"authenticators"`
	Trustees       []Trustee         `cbor:"trustees"`
	Threshold      uint8             `cbor:"trustees_threshold"`
	Mixnet         *MixnetConfig     `cbor:"mixnet,omitempty"`
}

// Kind implements Transaction.
func (e Election) Kind() ids.Type { return ids.Election }

// ID implements Transaction.
func (e Election) ID() ids.Identifier { return e.IDValue }

// Inputs implements Transaction: Election is the root of the DAG, so it
// depends on nothing.
func (e Election) Inputs() []ids.Identifier { return nil }

// SignerPublicKey implements Transaction: an Election is self-signed by
// the same authority key it declares, proving the creator controls it.
func (e Election) SignerPublicKey() (ed25519.PublicKey, bool) {
	return e.AuthorityKey, true
}

// HasBallot reports whether ballotID is one of this election's declared
// ballots.
func (e Election) HasBallot(ballotID uuid.UUID) bool {
	for _, b := range e.BallotIDs {
		if b == ballotID {
			return true
		}
	}
	return false
}

// HasAuthenticator reports whether id names one of this election's
// configured authenticators.
func (e Election) HasAuthenticator(id string) bool {
	for _, a := range e.Authenticators {
		if a == id {
			return true
		}
	}
	return false
}

// Trustee looks up a registered trustee by UUID.
func (e Election) Trustee(id uuid.UUID) (Trustee, bool) {
	for _, t := range e.Trustees {
		if t.ID == id {
			return t, true
		}
	}
	return Trustee{}, false
}
