// Copyright 2025 Certen Protocol
//
// Package sign implements the envelope signature scheme wrapping every
// transaction: Ed25519 over a domain-separated digest of the transaction's
// canonical encoding. Adapted from the validator's Ed25519 attestation
// strategy, dropping signature-aggregation support (Ed25519 has none) and
// the attestation/weight/bitfield bookkeeping that doesn't apply to a
// single-signer envelope.
package sign

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain strings separate signatures produced for distinct purposes so a
// signature over one kind of payload can never be replayed as another.
const (
	DomainTransaction = "CERTEN_BALLOT_TRANSACTION_V1"
)

// Signer holds an Ed25519 key pair and signs transaction digests under a
// fixed domain.
type Signer struct {
	domain     string
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewSigner wraps an existing Ed25519 private key.
func NewSigner(domain string, privateKey ed25519.PrivateKey) (*Signer, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("sign: invalid private key size: expected %d, got %d",
			ed25519.PrivateKeySize, len(privateKey))
	}
	if domain == "" {
		domain = DomainTransaction
	}
	return &Signer{
		domain:     domain,
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}, nil
}

// GenerateSigner creates a Signer backed by a freshly generated key pair.
func GenerateSigner(domain string) (*Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sign: generate key pair: %w", err)
	}
	return NewSigner(domain, priv)
}

// SignerFromSeed derives a Signer deterministically from a 32-byte seed,
// used by trustee/authority key-provisioning tooling.
func SignerFromSeed(domain string, seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("sign: invalid seed size: expected %d, got %d", ed25519.SeedSize, len(seed))
	}
	return NewSigner(domain, ed25519.NewKeyFromSeed(seed))
}

// PublicKey returns the signer's Ed25519 public key.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.publicKey
}

// Sign produces a signature over the domain-separated digest of payload
// (the canonical encoding of the transaction body being signed).
func (s *Signer) Sign(payload []byte) []byte {
	return ed25519.Sign(s.privateKey, domainMessage(s.domain, payload))
}

// Verify checks a signature against an arbitrary public key, for validating
// envelopes signed by other parties.
func Verify(domain string, publicKey ed25519.PublicKey, payload, signature []byte) error {
	if domain == "" {
		domain = DomainTransaction
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("sign: invalid public key size: expected %d, got %d",
			ed25519.PublicKeySize, len(publicKey))
	}
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("sign: invalid signature size: expected %d, got %d",
			ed25519.SignatureSize, len(signature))
	}
	if !ed25519.Verify(publicKey, domainMessage(domain, payload), signature) {
		return ErrBadSignature
	}
	return nil
}

// PublicKeyHex returns the signer's public key as a hex string, for
// embedding in election configuration and trustee roster files.
func (s *Signer) PublicKeyHex() string {
	return hex.EncodeToString(s.publicKey)
}

func domainMessage(domain string, payload []byte) []byte {
	digest := sha256.Sum256(payload)

	var buf bytes.Buffer
	buf.WriteString(domain)
	buf.Write(digest[:])

	out := sha256.Sum256(buf.Bytes())
	return out[:]
}
