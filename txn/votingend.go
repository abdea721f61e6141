// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/certen/threshold-ballot/ids"
)

// VotingEnd is the sentinel transaction that closes the casting phase of
// an election. Exactly one may exist per election.
type VotingEnd struct {
	IDValue    ids.Identifier `cbor:"id"`
	ElectionID ids.Identifier `cbor:"election_id"`
}

// Kind implements Transaction.
func (v VotingEnd) Kind() ids.Type { return ids.VotingEnd }

// ID implements Transaction.
func (v VotingEnd) ID() ids.Identifier { return v.IDValue }

// Inputs implements Transaction.
func (v VotingEnd) Inputs() []ids.Identifier {
	return []ids.Identifier{v.ElectionID}
}

// SignerPublicKey implements Transaction: VotingEnd is signed by the
// election authority, resolved externally by the validator.
func (v VotingEnd) SignerPublicKey() (ed25519.PublicKey, bool) {
	return nil, false
}

// BuildVotingEndID computes the all-zero-unique_id identifier every
// election's VotingEnd transaction must carry.
func BuildVotingEndID(electionID ids.Identifier) ids.Identifier {
	var unique [ids.UniqueIDSize]byte
	return ids.New(electionID, ids.VotingEnd, unique)
}
