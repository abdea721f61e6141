// Copyright 2025 Certen Protocol
//
// KVStore adapts a CometBFT dbm.DB into the Store interface, the same
// wrapping idiom the validator uses elsewhere for durable key/value
// persistence: transactions are keyed by their own 32-byte identifier and
// stored as their canonical CBOR envelope encoding, with SetSync used so
// an accepted transaction survives a crash before the next one is
// validated against it.
package store

import (
	dbm "github.com/cometbft/cometbft-db"

	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/txn"
)

// KVStore is a Store backed by a CometBFT key/value database.
type KVStore struct {
	db dbm.DB
}

// NewKVStore wraps db as a Store.
func NewKVStore(db dbm.DB) *KVStore {
	return &KVStore{db: db}
}

// Set implements Store.
func (s *KVStore) Set(envelope txn.Envelope) error {
	data, err := txn.EncodeEnvelope(envelope)
	if err != nil {
		return err
	}
	key := envelope.Transaction.ID().Bytes()
	return s.db.SetSync(key[:], data)
}

func (s *KVStore) get(id ids.Identifier) (txn.Envelope, error) {
	key := id.Bytes()
	data, err := s.db.Get(key[:])
	if err != nil {
		return txn.Envelope{}, err
	}
	if data == nil {
		return txn.Envelope{}, ErrNotFound
	}
	return txn.DecodeEnvelope(data)
}

// GetTransaction implements Store.
func (s *KVStore) GetTransaction(id ids.Identifier) (txn.Envelope, error) {
	return s.get(id)
}

// GetElection implements Store.
func (s *KVStore) GetElection(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Election)
}

// GetVote implements Store.
func (s *KVStore) GetVote(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Vote)
}

// GetMix implements Store.
func (s *KVStore) GetMix(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Mix)
}

// GetKeyGenPublicKey implements Store.
func (s *KVStore) GetKeyGenPublicKey(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.KeyGenPublicKey)
}

// GetPartialDecryption implements Store.
func (s *KVStore) GetPartialDecryption(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.PartialDecryption)
}

func (s *KVStore) getTyped(id ids.Identifier, want ids.Type) (txn.Envelope, error) {
	e, err := s.get(id)
	if err != nil {
		return txn.Envelope{}, err
	}
	if err := checkKind(want, e.Transaction.Kind()); err != nil {
		return txn.Envelope{}, err
	}
	return e, nil
}

// GetMultiple implements Store by scanning the full keyspace and filtering
// on the election scope and type byte encoded in every key's first 16
// bytes. CometBFT's dbm.DB does not expose a cheaper prefix scan across
// all backends, so this is the one Store operation whose cost scales with
// total log size rather than with the election in question; an embedder
// expecting large multi-election deployments should keep a secondary
// election-scoped index instead of relying on this implementation as-is.
func (s *KVStore) GetMultiple(electionID ids.Identifier, txType ids.Type) ([]txn.Envelope, error) {
	iter, err := s.db.Iterator(nil, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []txn.Envelope
	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		if len(key) != ids.Size {
			continue
		}
		var electionPrefix [ids.ElectionIDSize]byte
		copy(electionPrefix[:], key[:ids.ElectionIDSize])
		if electionPrefix != electionID.ElectionID {
			continue
		}
		if ids.Type(key[ids.ElectionIDSize]) != txType {
			continue
		}
		envelope, err := txn.DecodeEnvelope(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, envelope)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}
