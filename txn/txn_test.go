package txn

import (
	"testing"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/sign"
	"github.com/certen/threshold-ballot/ids"
)

func newElectionID(t *testing.T) ids.Identifier {
	t.Helper()
	id, err := ids.NewForElection()
	if err != nil {
		t.Fatalf("NewForElection: %v", err)
	}
	return id
}

func TestEnvelopeSignVerifyRoundTrip(t *testing.T) {
	electionID := newElectionID(t)

	signer, err := sign.GenerateSigner(sign.DomainTransaction)
	if err != nil {
		t.Fatalf("GenerateSigner: %v", err)
	}

	election := Election{
		IDValue:      electionID,
		AuthorityKey: signer.PublicKey(),
		BallotIDs:    []uuid.UUID{uuid.New()},
		Trustees: []Trustee{
			{ID: uuid.New(), Index: 1},
		},
		Threshold: 1,
	}

	envelope, err := Sign(signer, election)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	pk, ok := envelope.Transaction.SignerPublicKey()
	if !ok {
		t.Fatal("Election.SignerPublicKey() returned false, expected self-described key")
	}
	if err := envelope.Verify(pk); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestEnvelopeEncodeDecodeRoundTrip(t *testing.T) {
	electionID := newElectionID(t)
	signer, err := sign.GenerateSigner(sign.DomainTransaction)
	if err != nil {
		t.Fatalf("GenerateSigner: %v", err)
	}

	votingEnd := VotingEnd{
		IDValue:    BuildVotingEndID(electionID),
		ElectionID: electionID,
	}
	envelope, err := Sign(signer, votingEnd)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	data, err := EncodeEnvelope(envelope)
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}

	decoded, err := DecodeEnvelope(data)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}

	ve, ok := decoded.Transaction.(VotingEnd)
	if !ok {
		t.Fatalf("expected decoded transaction to be VotingEnd, got %T", decoded.Transaction)
	}
	if !ve.ID().Equal(votingEnd.ID()) {
		t.Fatal("decoded VotingEnd ID mismatch")
	}
	if err := decoded.Verify(signer.PublicKey()); err != nil {
		t.Fatalf("Verify decoded envelope: %v", err)
	}
}

func TestBuildVotingEndIDIsZeroUnique(t *testing.T) {
	electionID := newElectionID(t)
	id := BuildVotingEndID(electionID)
	if id.UniqueID != ([ids.UniqueIDSize]byte{}) {
		t.Fatal("expected VotingEnd unique_id to be all-zero")
	}
	if id.Type != ids.VotingEnd {
		t.Fatal("expected VotingEnd type byte")
	}
}

func TestBuildPartialDecryptionIDLayout(t *testing.T) {
	electionID := newElectionID(t)
	voteID, err := ids.NewRandom(electionID, ids.Vote)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}

	id := BuildPartialDecryptionID(electionID, voteID, 7)
	if id.Type != ids.PartialDecryption {
		t.Fatal("expected PartialDecryption type byte")
	}
	if id.UniqueID[0] != uint8(ids.Vote) {
		t.Fatalf("expected unique_id[0] to be upstream type byte %d, got %d", ids.Vote, id.UniqueID[0])
	}
	if id.UniqueID[15] != 7 {
		t.Fatalf("expected unique_id[15] to be trustee index 7, got %d", id.UniqueID[15])
	}
	for i := 0; i < 14; i++ {
		if id.UniqueID[1+i] != voteID.UniqueID[i] {
			t.Fatalf("unique_id[%d] mismatch with upstream unique_id", 1+i)
		}
	}
}

func TestBuildDecryptionIDMatchesVoteBytesPrefix(t *testing.T) {
	electionID := newElectionID(t)
	voteID, err := ids.NewRandom(electionID, ids.Vote)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}

	id := BuildDecryptionID(electionID, voteID)
	voteBytes := voteID.Bytes()
	for i := 0; i < ids.UniqueIDSize; i++ {
		if id.UniqueID[i] != voteBytes[i] {
			t.Fatal("expected Decryption unique_id to equal the first 16 bytes of the Vote's own identifier encoding")
		}
	}
}
