// Copyright 2025 Certen Protocol
package validator

import (
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidateVotingEnd checks that ve carries the all-zero unique_id every
// election's VotingEnd must use and that no VotingEnd has already been
// recorded for its election. The envelope signature (signer = the
// election authority, externally resolved) is the caller's
// responsibility: resolve it with ElectionAuthorityKey and pass the
// result to Envelope.Verify.
func ValidateVotingEnd(s store.Store, ve txn.VotingEnd) error {
	if _, err := getElection(s, ve.ElectionID); err != nil {
		return err
	}

	expected := txn.BuildVotingEndID(ve.ElectionID)
	if !expected.Equal(ve.ID()) {
		return ErrIdentifierBadComposition
	}

	exists, err := votingEndExists(s, ve.ElectionID)
	if err != nil {
		return err
	}
	if exists {
		return ErrVotingEndAlreadyExists
	}

	return nil
}

// ElectionAuthorityKey resolves the Ed25519 key a VotingEnd or Decryption
// transaction for electionID must be signed by.
func ElectionAuthorityKey(s store.Store, electionID ids.Identifier) ([]byte, error) {
	election, err := getElection(s, electionID)
	if err != nil {
		return nil, err
	}
	return election.AuthorityKey, nil
}
