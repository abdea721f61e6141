// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/keygen"
	"github.com/certen/threshold-ballot/ids"
)

// KeyGenPublicKey is a single trustee's commitment to its share of the
// joint ElGamal public key, together with a Schnorr proof of knowledge of
// the secret exponent behind it.
//
// SigningKey is an Ed25519 key distinct from TrusteePublicKey: the latter
// is a BLS12-381 G1 element bound to the trustee's ElGamal share, and
// Ed25519 signatures cannot be verified against a BLS12-381 point, so the
// trustee registers a separate envelope-signing key here (unlike the
// source protocol's curve25519-based keys, which double as both).
type KeyGenPublicKey struct {
	IDValue          ids.Identifier        `cbor:"id"`
	ElectionID       ids.Identifier        `cbor:"election_id"`
	TrusteeID        uuid.UUID             `cbor:"trustee_id"`
	SigningKey       ed25519.PublicKey     `cbor:"signing_key"`
	TrusteePublicKey group.Point           `cbor:"trustee_public_key"`
	PublicKeyProof   keygen.PublicKeyProof `cbor:"public_key_proof"`
}

// Kind implements Transaction.
func (k KeyGenPublicKey) Kind() ids.Type { return ids.KeyGenPublicKey }

// ID implements Transaction.
func (k KeyGenPublicKey) ID() ids.Identifier { return k.IDValue }

// Inputs implements Transaction: a KeyGenPublicKey depends only on the
// Election it registers the trustee against.
func (k KeyGenPublicKey) Inputs() []ids.Identifier {
	return []ids.Identifier{k.ElectionID}
}

// SignerPublicKey implements Transaction: a KeyGenPublicKey is signed by
// the trustee's own registered Ed25519 key ("signer =
// trustee_public_key", realized here as SigningKey -- see the type's
// doc comment).
func (k KeyGenPublicKey) SignerPublicKey() (ed25519.PublicKey, bool) {
	return k.SigningKey, true
}

// BuildKeyGenPublicKeyID computes the identifier a KeyGenPublicKey
// transaction for trusteeID must carry: unique_id is the trustee's UUID.
func BuildKeyGenPublicKeyID(electionID ids.Identifier, trusteeID uuid.UUID) ids.Identifier {
	var unique [ids.UniqueIDSize]byte
	copy(unique[:], trusteeID[:])
	return ids.New(electionID, ids.KeyGenPublicKey, unique)
}
