// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/threshold"
	"github.com/certen/threshold-ballot/ids"
)

// PartialDecryption is a single trustee's share of the decryption of one
// ciphertext -- a Vote's encrypted_vote, or one entry of the final Mix's
// reencryption list.
type PartialDecryption struct {
	IDValue           ids.Identifier         `cbor:"id"`
	ElectionID        ids.Identifier         `cbor:"election_id"`
	UpstreamID        ids.Identifier         `cbor:"upstream_id"`
	UpstreamIndex     uint32                 `cbor:"upstream_index"`
	TrusteeID         uuid.UUID              `cbor:"trustee_id"`
	TrusteePublicKey  group.Point            `cbor:"trustee_public_key"`
	PartialDecryption threshold.DecryptShare `cbor:"partial_decryption"`
}

// Kind implements Transaction.
func (p PartialDecryption) Kind() ids.Type { return ids.PartialDecryption }

// ID implements Transaction.
func (p PartialDecryption) ID() ids.Identifier { return p.IDValue }

// Inputs implements Transaction. Per the open question on upstream linkage, the
// source's inputs() omits the KeyGenPublicKey transaction even though
// validation reads it; this implementation treats Inputs as advisory
// documentation of the dependency graph's shape, not as the authoritative
// list of everything validate_tx consults -- see DESIGN.md. It is
// extended here to include the trustee's KeyGenPublicKey id, since that
// id is always deterministically known (BuildKeyGenPublicKeyID) and
// omitting a knowable dependency serves no purpose.
func (p PartialDecryption) Inputs() []ids.Identifier {
	return []ids.Identifier{
		p.ElectionID,
		p.UpstreamID,
		BuildKeyGenPublicKeyID(p.ElectionID, p.TrusteeID),
	}
}

// SignerPublicKey implements Transaction: a PartialDecryption is signed
// by the producing trustee's registered Ed25519 key, resolved externally
// by the validator from the trustee's KeyGenPublicKey transaction.
func (p PartialDecryption) SignerPublicKey() (ed25519.PublicKey, bool) {
	return nil, false
}

// BuildPartialDecryptionID computes the identifier a PartialDecryption
// from trusteeIndex on upstreamID must carry: unique_id is the upstream
// transaction's type byte, followed by the first 14 bytes of its
// unique_id, followed by the trustee's Election-declared index.
func BuildPartialDecryptionID(electionID, upstreamID ids.Identifier, trusteeIndex uint8) ids.Identifier {
	var unique [ids.UniqueIDSize]byte
	unique[0] = uint8(upstreamID.Type)
	copy(unique[1:15], upstreamID.UniqueID[:14])
	unique[15] = trusteeIndex
	return ids.New(electionID, ids.PartialDecryption, unique)
}
