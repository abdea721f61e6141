// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/ids"
)

// Decryption publishes the plaintext of a single Vote, once a threshold
// quorum of trustees have posted PartialDecryption shares for it.
// Exactly one exists per Vote.
type Decryption struct {
	IDValue       ids.Identifier `cbor:"id"`
	ElectionID    ids.Identifier `cbor:"election_id"`
	VoteID        ids.Identifier `cbor:"vote_id"`
	Trustees      []uuid.UUID    `cbor:"trustees"`
	DecryptedVote []byte         `cbor:"decrypted_vote"`
}

// Kind implements Transaction.
func (d Decryption) Kind() ids.Type { return ids.Decryption }

// ID implements Transaction.
func (d Decryption) ID() ids.Identifier { return d.IDValue }

// Inputs implements Transaction.
func (d Decryption) Inputs() []ids.Identifier {
	inputs := make([]ids.Identifier, 0, 2+len(d.Trustees))
	inputs = append(inputs, d.ElectionID, d.VoteID)
	return inputs
}

// SignerPublicKey implements Transaction: a Decryption MUST be signed by
// the election authority.
func (d Decryption) SignerPublicKey() (ed25519.PublicKey, bool) {
	return nil, false
}

// BuildDecryptionID computes the identifier a Decryption for voteID must
// carry: unique_id is the first 16 bytes of the Vote's own identifier
// encoding. Because a Vote's own identifier encoding
// begins with the 15-byte election_id shared by every transaction in the
// election followed by its one-byte transaction type, this formula yields
// the same unique_id for every Vote in a given election -- a property
// inherited unchanged from the source protocol's resolution of its
// "TODO: Validate ID" (see DESIGN.md). The validator still enforces the
// one-Decryption-per-Vote rule via VoteID, independent of this ID.
func BuildDecryptionID(electionID, voteID ids.Identifier) ids.Identifier {
	voteBytes := voteID.Bytes()
	var unique [ids.UniqueIDSize]byte
	copy(unique[:], voteBytes[:ids.UniqueIDSize])
	return ids.New(electionID, ids.Decryption, unique)
}
