// Copyright 2025 Certen Protocol
//
// Package store implements the abstract typed-lookup interface the
// validator consumes (C2): append-only storage of signed
// transactions, with typed accessors that fail if the stored transaction's
// kind does not match the accessor requested.
package store

import (
	"errors"

	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/txn"
)

// ErrNotFound is returned by any accessor when no transaction exists
// under the requested identifier.
var ErrNotFound = errors.New("store: transaction not found")

// ErrWrongKind is returned by a typed accessor when the stored
// transaction's kind does not match what the accessor requires.
var ErrWrongKind = errors.New("store: wrong transaction kind")

// Store is the read/append interface the validator depends on. Every
// method is safe to call concurrently with other reads; Set is the only
// mutation and must be serialized by the embedder
// ("validate-then-insert atomically").
type Store interface {
	// GetElection returns the Election envelope at id.
	GetElection(id ids.Identifier) (txn.Envelope, error)

	// GetTransaction returns the envelope at id regardless of kind.
	GetTransaction(id ids.Identifier) (txn.Envelope, error)

	// GetVote returns the Vote envelope at id.
	GetVote(id ids.Identifier) (txn.Envelope, error)

	// GetMix returns the Mix envelope at id.
	GetMix(id ids.Identifier) (txn.Envelope, error)

	// GetKeyGenPublicKey returns the KeyGenPublicKey envelope at id.
	GetKeyGenPublicKey(id ids.Identifier) (txn.Envelope, error)

	// GetPartialDecryption returns the PartialDecryption envelope at id.
	GetPartialDecryption(id ids.Identifier) (txn.Envelope, error)

	// GetMultiple returns every stored transaction of kind matching
	// txType within the election scoped by electionID (the 15-byte
	// election_id prefix of electionID, not its full identifier).
	GetMultiple(electionID ids.Identifier, txType ids.Type) ([]txn.Envelope, error)

	// Set appends envelope to the store, keyed by its transaction's own
	// identifier. Implementations must not allow overwriting an existing
	// key -- the log is append-only.
	Set(envelope txn.Envelope) error
}

// checkKind returns ErrWrongKind wrapped with context if got does not
// match want.
func checkKind(want, got ids.Type) error {
	if want != got {
		return errors.Join(ErrWrongKind, errors.New(want.String()+" expected, got "+got.String()))
	}
	return nil
}
