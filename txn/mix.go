// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/shuffle"
	"github.com/certen/threshold-ballot/ids"
)

// Mix is one stage of the optional re-encryption mix-net: mix_index re-
// encrypts and shuffles the previous stage's output (or the full Vote set
// when mix_index is 0), accompanied by a zero-knowledge proof of
// permutation correctness. The unique_id layout binds each mix
// stage to the trustee who produced it, so Mix carries a
// TrusteeID the same way PartialDecryption does.
type Mix struct {
	IDValue      ids.Identifier      `cbor:"id"`
	ElectionID   ids.Identifier      `cbor:"election_id"`
	TrusteeID    uuid.UUID           `cbor:"trustee_id"`
	MixIndex     uint8               `cbor:"mix_index"`
	Reencryption []elgamal.Ciphertext `cbor:"reencryption"`
	Proof        shuffle.Proof       `cbor:"proof"`
}

// Kind implements Transaction.
func (m Mix) Kind() ids.Type { return ids.Mix }

// ID implements Transaction.
func (m Mix) ID() ids.Identifier { return m.IDValue }

// Inputs implements Transaction.
func (m Mix) Inputs() []ids.Identifier {
	return []ids.Identifier{m.ElectionID}
}

// SignerPublicKey implements Transaction: a Mix is signed by the
// producing trustee's registered Ed25519 key, resolved externally by the
// validator via TrusteeID the same way PartialDecryption's signer is.
func (m Mix) SignerPublicKey() (ed25519.PublicKey, bool) {
	return nil, false
}

// BuildMixID computes the identifier a Mix transaction at mixIndex
// produced by trusteeID must carry: unique_id is mix_index (1 byte)
// followed by the first 15 bytes of the trustee's UUID.
func BuildMixID(electionID ids.Identifier, mixIndex uint8, trusteeID uuid.UUID) ids.Identifier {
	var unique [ids.UniqueIDSize]byte
	unique[0] = mixIndex
	copy(unique[1:], trusteeID[:15])
	return ids.New(electionID, ids.Mix, unique)
}
