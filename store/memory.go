package store

import (
	"sync"

	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/txn"
)

// MemoryStore is an in-memory Store, sufficient for tests and for a
// single-process election node that doesn't need to survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[ids.Identifier]txn.Envelope
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[ids.Identifier]txn.Envelope)}
}

// Set implements Store.
func (s *MemoryStore) Set(envelope txn.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[envelope.Transaction.ID()] = envelope
	return nil
}

func (s *MemoryStore) get(id ids.Identifier) (txn.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[id]
	if !ok {
		return txn.Envelope{}, ErrNotFound
	}
	return e, nil
}

// GetTransaction implements Store.
func (s *MemoryStore) GetTransaction(id ids.Identifier) (txn.Envelope, error) {
	return s.get(id)
}

// GetElection implements Store.
func (s *MemoryStore) GetElection(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Election)
}

// GetVote implements Store.
func (s *MemoryStore) GetVote(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Vote)
}

// GetMix implements Store.
func (s *MemoryStore) GetMix(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.Mix)
}

// GetKeyGenPublicKey implements Store.
func (s *MemoryStore) GetKeyGenPublicKey(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.KeyGenPublicKey)
}

// GetPartialDecryption implements Store.
func (s *MemoryStore) GetPartialDecryption(id ids.Identifier) (txn.Envelope, error) {
	return s.getTyped(id, ids.PartialDecryption)
}

func (s *MemoryStore) getTyped(id ids.Identifier, want ids.Type) (txn.Envelope, error) {
	e, err := s.get(id)
	if err != nil {
		return txn.Envelope{}, err
	}
	if err := checkKind(want, e.Transaction.Kind()); err != nil {
		return txn.Envelope{}, err
	}
	return e, nil
}

// GetMultiple implements Store.
func (s *MemoryStore) GetMultiple(electionID ids.Identifier, txType ids.Type) ([]txn.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []txn.Envelope
	for id, e := range s.data {
		if id.ElectionID == electionID.ElectionID && id.Type == txType {
			out = append(out, e)
		}
	}
	return out, nil
}
