// Copyright 2025 Certen Protocol
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/keygen"
	"github.com/certen/threshold-ballot/crypto/sign"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/txn"
)

func main() {
	var (
		electionHex   = flag.String("election", "", "Election identifier (64 lowercase hex chars)")
		trusteeID     = flag.String("trustee-id", "", "This trustee's UUID (generated if omitted)")
		outSecretPath = flag.String("out-secret", "", "Where to write this trustee's private key material (keep offline)")
		outTxPath     = flag.String("out-transaction", "", "Where to write the bundle-ready KeyGenPublicKey envelope entry")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[trusteegen] ", log.LstdFlags)

	if *electionHex == "" || *outSecretPath == "" || *outTxPath == "" {
		logger.Fatal("missing required flag: -election, -out-secret, and -out-transaction are all required")
	}

	electionID, err := ids.Parse(*electionHex)
	if err != nil {
		logger.Fatalf("parse -election: %v", err)
	}
	if electionID.Type != ids.Election {
		logger.Fatalf("-election does not identify an Election transaction")
	}

	trustee := uuid.New()
	if *trusteeID != "" {
		trustee, err = uuid.Parse(*trusteeID)
		if err != nil {
			logger.Fatalf("parse -trustee-id: %v", err)
		}
	}

	secret, err := group.RandomScalar()
	if err != nil {
		logger.Fatalf("generate keygen secret: %v", err)
	}
	proof, err := keygen.Prove(secret)
	if err != nil {
		logger.Fatalf("build keygen proof: %v", err)
	}

	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		logger.Fatalf("generate signing seed: %v", err)
	}
	signer, err := sign.SignerFromSeed(sign.DomainTransaction, seed[:])
	if err != nil {
		logger.Fatalf("derive signer: %v", err)
	}

	kgpk := txn.KeyGenPublicKey{
		IDValue:          txn.BuildKeyGenPublicKeyID(electionID, trustee),
		ElectionID:       electionID,
		TrusteeID:        trustee,
		SigningKey:       signer.PublicKey(),
		TrusteePublicKey: proof.PublicKey,
		PublicKeyProof:   proof,
	}
	envelope, err := txn.Sign(signer, kgpk)
	if err != nil {
		logger.Fatalf("sign transaction: %v", err)
	}
	encoded, err := txn.EncodeEnvelope(envelope)
	if err != nil {
		logger.Fatalf("encode envelope: %v", err)
	}

	secretMaterial := trusteeSecret{
		TrusteeID:    trustee.String(),
		ElectionID:   electionID.String(),
		SigningSeed:  hex.EncodeToString(seed[:]),
		KeyGenSecret: hex.EncodeToString(secretBytes(secret)),
	}
	if err := writeJSON(*outSecretPath, secretMaterial, 0o600); err != nil {
		logger.Fatalf("write secret material: %v", err)
	}
	if err := writeJSON(*outTxPath, bundleEntry{Envelope: encoded}, 0o644); err != nil {
		logger.Fatalf("write transaction: %v", err)
	}

	logger.Printf("trustee %s registered for election %s", trustee, electionID)
	logger.Printf("secret material: %s (keep offline)", *outSecretPath)
	logger.Printf("transaction entry: %s (publish alongside the rest of the bundle)", *outTxPath)
}

// trusteeSecret is this trustee's durable private state: the seed behind
// its envelope-signing key and its share of the distributed ElGamal
// secret. Losing this file means losing the ability to produce this
// trustee's PartialDecryption transactions; it is never transmitted.
type trusteeSecret struct {
	TrusteeID    string `json:"trustee_id"`
	ElectionID   string `json:"election_id"`
	SigningSeed  string `json:"signing_seed_hex"`
	KeyGenSecret string `json:"keygen_secret_hex"`
}

// bundleEntry mirrors cmd/electionnode's on-disk JSON shape for a single
// signed transaction envelope, so trusteegen's output can be concatenated
// directly into a verification bundle.
type bundleEntry struct {
	Envelope []byte `json:"envelope"`
}

func secretBytes(s group.Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

func writeJSON(path string, v interface{}, mode os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, data, mode)
}
