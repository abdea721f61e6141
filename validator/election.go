// Copyright 2025 Certen Protocol
package validator

import (
	"github.com/certen/threshold-ballot/txn"
)

// ValidateElection checks an Election transaction's self-contained
// structural invariants: ballot/trustee roster shape, threshold bounds,
// distinct in-range trustee indices, and (if a mixnet is configured) a
// non-zero shuffle count. Signature verification is the caller's
// responsibility via Envelope.Verify(election.AuthorityKey) since
// Election is self-signed.
func ValidateElection(election txn.Election) error {
	if len(election.BallotIDs) < 1 {
		return ErrElectionInvalid
	}
	if len(election.Trustees) < 1 {
		return ErrElectionInvalid
	}
	if election.Threshold < 1 || int(election.Threshold) > len(election.Trustees) {
		return ErrElectionInvalid
	}

	seen := make(map[uint8]bool, len(election.Trustees))
	for _, t := range election.Trustees {
		if t.Index < 1 {
			return ErrElectionInvalid
		}
		if seen[t.Index] {
			return ErrElectionInvalid
		}
		seen[t.Index] = true
	}

	if election.Mixnet != nil && election.Mixnet.NumShuffles < 1 {
		return ErrElectionInvalid
	}

	return nil
}
