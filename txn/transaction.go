// Copyright 2025 Certen Protocol
//
// Package txn defines the tagged union of election transaction variants
// and the signed envelope wrapping each one (C4). Every
// variant implements Transaction; dispatch between variants happens by
// the Kind tag carried alongside the envelope, cross-checked against the
// type byte embedded in the transaction's own Identifier,
// "Both MUST agree; disagreement is UnknownTransactionType").
package txn

import (
	"crypto/ed25519"

	"github.com/certen/threshold-ballot/ids"
)

// Transaction is the contract every variant satisfies: a
// content-addressable identity, the set of predecessor IDs it depends on,
// and its self-described signer when the variant carries one directly.
type Transaction interface {
	// Kind reports which variant this is -- the serialization tag.
	Kind() ids.Type

	// ID returns the transaction's own identifier.
	ID() ids.Identifier

	// Inputs lists the identifiers this transaction depends on. Order is
	// insignificant; it documents dependency, not validation sequence.
	Inputs() []ids.Identifier

	// SignerPublicKey returns the Ed25519 key that must have produced the
	// envelope signature, when the variant carries that key in its own
	// fields. The second return value is false when the signer must be
	// resolved externally: for VotingEnd and Decryption this means the
	// election authority key; for Mix and PartialDecryption it means the
	// producing trustee's Ed25519 key registered by its KeyGenPublicKey
	// transaction.
	// The validator, which holds store access, resolves these cases --
	// see validator package per-variant pipelines.
	SignerPublicKey() (ed25519.PublicKey, bool)
}
