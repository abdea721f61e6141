package crypto

import (
	"testing"

	"github.com/certen/threshold-ballot/crypto/authn"
	"github.com/certen/threshold-ballot/crypto/shuffle"
	"github.com/certen/threshold-ballot/crypto/sign"
)

func TestVerifyEnvelopeSignatureRoundTrip(t *testing.T) {
	signer, err := sign.GenerateSigner(sign.DomainTransaction)
	if err != nil {
		t.Fatalf("GenerateSigner: %v", err)
	}
	payload := []byte("canonical transaction bytes")
	sig := signer.Sign(payload)

	if err := VerifyEnvelopeSignature(signer.PublicKey(), payload, sig); err != nil {
		t.Fatalf("VerifyEnvelopeSignature: %v", err)
	}
}

func TestSuiteVerifyAuthentication(t *testing.T) {
	auth := authn.NewStubAuthenticator("auth-1", []byte("secret"))
	s := New()
	s.Authenticators = authn.MapRegistry{"auth-1": auth}

	anon := []byte("anon-key")
	ballot := []byte("ballot-1")
	entry := auth.Issue(anon, ballot)

	ok, err := s.VerifyAuthentication("auth-1", anon, ballot, entry)
	if err != nil {
		t.Fatalf("VerifyAuthentication: %v", err)
	}
	if !ok {
		t.Fatal("VerifyAuthentication rejected a genuine entry")
	}

	ok, err = s.VerifyAuthentication("unknown", anon, ballot, entry)
	if err != nil {
		t.Fatalf("VerifyAuthentication: %v", err)
	}
	if ok {
		t.Fatal("VerifyAuthentication accepted an unknown authenticator ID")
	}
}

func TestSuiteVerifyShuffleDefaultsToNoop(t *testing.T) {
	s := New()
	if _, ok := s.Shuffle.(shuffle.NoopVerifier); !ok {
		t.Fatal("expected New() to default to shuffle.NoopVerifier")
	}
}
