// Copyright 2025 Certen Protocol
package validator

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// getElection resolves electionID to its decoded Election, translating a
// store miss into the validator's own not-found error.
func getElection(s store.Store, electionID ids.Identifier) (txn.Election, error) {
	envelope, err := s.GetElection(electionID)
	if err != nil {
		return txn.Election{}, translateStoreError(err, electionID)
	}
	election, ok := envelope.Transaction.(txn.Election)
	if !ok {
		return txn.Election{}, ErrWrongTransactionKind
	}
	return election, nil
}

// translateStoreError maps a store-layer error onto the validator's
// reference-error taxonomy.
func translateStoreError(err error, id ids.Identifier) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &TransactionNotFoundError{ID: id}
	case errors.Is(err, store.ErrWrongKind):
		return ErrWrongTransactionKind
	default:
		return err
	}
}

// jointPublicKey sums an election's trustee shares into the joint ElGamal
// public key h = sum_i g^{s_i} (GLOSSARY, "Joint public key").
func jointPublicKey(election txn.Election) group.Point {
	var h group.Point
	for i, t := range election.Trustees {
		if i == 0 {
			h = t.PublicKey
			continue
		}
		h = h.Add(t.PublicKey)
	}
	return h
}

// votingEndExists reports whether the election's VotingEnd transaction is
// on record.
func votingEndExists(s store.Store, electionID ids.Identifier) (bool, error) {
	existing, err := s.GetMultiple(electionID, ids.VotingEnd)
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}

// canonicalVotes returns every Vote transaction belonging to electionID in
// canonical order: ascending by the Vote's own 32-byte identifier. This is
// the "canonical order" Mix(0)'s expected input, and the Decryption-to-
// mixed-ciphertext index mapping (see DESIGN.md), are both defined against.
func canonicalVotes(s store.Store, electionID ids.Identifier) ([]txn.Vote, error) {
	envelopes, err := s.GetMultiple(electionID, ids.Vote)
	if err != nil {
		return nil, err
	}
	votes := make([]txn.Vote, 0, len(envelopes))
	for _, e := range envelopes {
		v, ok := e.Transaction.(txn.Vote)
		if !ok {
			return nil, ErrWrongTransactionKind
		}
		votes = append(votes, v)
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].ID().String() < votes[j].ID().String()
	})
	return votes, nil
}

// findMixByIndex returns the single Mix transaction recorded at mixIndex
// within electionID's log. A well-formed log carries at most one Mix per
// stage; more than one is treated the same as none -- ambiguous chain
// state the validator refuses to resolve on the referencing transaction's
// behalf.
func findMixByIndex(s store.Store, electionID ids.Identifier, mixIndex uint8) (txn.Mix, error) {
	envelopes, err := s.GetMultiple(electionID, ids.Mix)
	if err != nil {
		return txn.Mix{}, err
	}
	var found *txn.Mix
	for _, e := range envelopes {
		m, ok := e.Transaction.(txn.Mix)
		if !ok {
			return txn.Mix{}, ErrWrongTransactionKind
		}
		if m.MixIndex != mixIndex {
			continue
		}
		if found != nil {
			return txn.Mix{}, ErrMixStageNotFound
		}
		mCopy := m
		found = &mCopy
	}
	if found == nil {
		return txn.Mix{}, ErrMixStageNotFound
	}
	return *found, nil
}

// keyGenSigningKey returns the KeyGenPublicKey transaction a trustee
// registered, which carries its Ed25519 envelope-signing key.
func keyGenSigningKey(s store.Store, electionID ids.Identifier, trusteeID uuid.UUID) (txn.KeyGenPublicKey, error) {
	id := txn.BuildKeyGenPublicKeyID(electionID, trusteeID)
	envelope, err := s.GetKeyGenPublicKey(id)
	if err != nil {
		return txn.KeyGenPublicKey{}, translateStoreError(err, id)
	}
	kgpk, ok := envelope.Transaction.(txn.KeyGenPublicKey)
	if !ok {
		return txn.KeyGenPublicKey{}, ErrWrongTransactionKind
	}
	return kgpk, nil
}

// wellFormedCiphertext rejects a Ciphertext whose components are the
// group identity, which no honest Encrypt call ever produces.
func wellFormedCiphertext(ct elgamal.Ciphertext) bool {
	return !ct.C1.IsIdentity() && !ct.C2.IsIdentity()
}
