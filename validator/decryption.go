// Copyright 2025 Certen Protocol
package validator

import (
	"bytes"

	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/threshold"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
)

// ValidateDecryption checks that voting has ended and the referenced Vote
// exists, that the listed trustees meet the election's threshold and are
// all distinct members of its roster, that each one's PartialDecryption
// for this Vote's ciphertext is on record, and that running the threshold
// combiner over those shares reproduces decrypted_vote exactly. The
// envelope signature (signer = the election authority, externally
// resolved) is the caller's responsibility: resolve it with
// ElectionAuthorityKey and pass the result to Envelope.Verify.
//
// When the election has no mixnet, the upstream ciphertext is the Vote's
// own encrypted_vote. When it does, individual vote-to-mixed-ciphertext
// correspondence is exactly what a shuffle is meant to make unrecoverable
// from the log by an outside observer; since Decryption's own fields
// (vote_id, trustees, decrypted_vote) carry nothing else to key off of,
// this validator resolves the mixed case by position: vote_id's ordinal
// place among the election's Votes in canonical order is taken as its
// index into the final Mix's reencryption list. This is a documented
// simplifying assumption for the log-internal consistency check the
// validator performs here, not a claim about what an external observer
// without this mapping could infer (see DESIGN.md).
func ValidateDecryption(s store.Store, suite *certcrypto.Suite, d txn.Decryption) error {
	election, err := getElection(s, d.ElectionID)
	if err != nil {
		return err
	}

	ended, err := votingEndExists(s, d.ElectionID)
	if err != nil {
		return err
	}
	if !ended {
		return ErrMissingVotingEndTransaction
	}

	voteEnvelope, err := s.GetVote(d.VoteID)
	if err != nil {
		return translateStoreError(err, d.VoteID)
	}
	vote, ok := voteEnvelope.Transaction.(txn.Vote)
	if !ok {
		return ErrWrongTransactionKind
	}

	expected := txn.BuildDecryptionID(d.ElectionID, d.VoteID)
	if !expected.Equal(d.ID()) {
		return ErrIdentifierBadComposition
	}

	existing, err := s.GetMultiple(d.ElectionID, ids.Decryption)
	if err != nil {
		return err
	}
	for _, e := range existing {
		other, ok := e.Transaction.(txn.Decryption)
		if ok && other.VoteID.Equal(d.VoteID) {
			return ErrDecryptionAlreadyExists
		}
	}

	if len(d.Trustees) < int(election.Threshold) {
		return &NotEnoughSharesError{Required: int(election.Threshold), Got: len(d.Trustees)}
	}
	seen := make(map[string]bool, len(d.Trustees))
	indexByTrustee := make(map[string]uint8, len(d.Trustees))
	for _, trusteeID := range d.Trustees {
		key := trusteeID.String()
		if seen[key] {
			return ErrElectionInvalid
		}
		seen[key] = true

		trustee, ok := election.Trustee(trusteeID)
		if !ok {
			return &TrusteeDoesNotExistError{TrusteeID: trusteeID}
		}
		indexByTrustee[key] = trustee.Index
	}

	upstreamID, upstreamIndex, ciphertext, err := decryptionUpstream(s, election, d, vote)
	if err != nil {
		return err
	}

	shares := make([]threshold.TrusteeShare, 0, len(election.Trustees))
	for _, t := range election.Trustees {
		index, wanted := indexByTrustee[t.ID.String()]
		if !wanted {
			continue
		}

		pdID := txn.BuildPartialDecryptionID(d.ElectionID, upstreamID, index)
		pdEnvelope, err := s.GetPartialDecryption(pdID)
		if err != nil {
			return translateStoreError(err, pdID)
		}
		pd, ok := pdEnvelope.Transaction.(txn.PartialDecryption)
		if !ok {
			return ErrWrongTransactionKind
		}
		if pd.UpstreamIndex != upstreamIndex {
			return ErrInvalidUpstreamIndex
		}

		shares = append(shares, threshold.TrusteeShare{Index: index, Share: pd.PartialDecryption})
	}

	plaintext, err := certcrypto.CombineShares(ciphertext, int(election.Threshold), shares)
	if err != nil {
		if nes, ok := err.(*threshold.NotEnoughSharesError); ok {
			return &NotEnoughSharesError{Required: nes.Required, Got: nes.Got}
		}
		return &VoteDecryptionFailedError{Inner: err}
	}

	if !bytes.Equal(plaintext, d.DecryptedVote) {
		return ErrVoteDecryptionMismatch
	}

	return nil
}

// decryptionUpstream resolves the (upstream_id, upstream_index,
// ciphertext) tuple every PartialDecryption for this Decryption must
// agree on.
func decryptionUpstream(s store.Store, election txn.Election, d txn.Decryption, vote txn.Vote) (ids.Identifier, uint32, elgamal.Ciphertext, error) {
	if election.Mixnet == nil {
		return d.VoteID, 0, vote.EncryptedVote, nil
	}

	finalMix, err := findMixByIndex(s, d.ElectionID, uint8(election.Mixnet.NumShuffles-1))
	if err != nil {
		return ids.Identifier{}, 0, elgamal.Ciphertext{}, err
	}

	votes, err := canonicalVotes(s, d.ElectionID)
	if err != nil {
		return ids.Identifier{}, 0, elgamal.Ciphertext{}, err
	}
	position := -1
	for i, v := range votes {
		if v.ID().Equal(d.VoteID) {
			position = i
			break
		}
	}
	if position < 0 || position >= len(finalMix.Reencryption) {
		return ids.Identifier{}, 0, elgamal.Ciphertext{}, ErrInvalidUpstreamIndex
	}

	return finalMix.ID(), uint32(position), finalMix.Reencryption[position], nil
}
