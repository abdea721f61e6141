package authn

import (
	"crypto/hmac"
	"crypto/sha256"
)

// StubAuthenticator is an HMAC-based stand-in for a blind-signature
// authenticator, used by validator tests and local development to exercise
// the AuthenticatorProofFailed path without standing up a real blind-
// signature issuer. It is not anonymous -- the issuer's verification key
// here doubles as its issuance secret -- so it must never be used as an
// election's actual authenticator.
type StubAuthenticator struct {
	id  string
	key []byte
}

// NewStubAuthenticator builds a StubAuthenticator identified by id and
// keyed by key.
func NewStubAuthenticator(id string, key []byte) *StubAuthenticator {
	return &StubAuthenticator{id: id, key: key}
}

// ID implements Authenticator.
func (s *StubAuthenticator) ID() string { return s.id }

// Issue produces an authentication entry certifying anonymousKey for
// ballotID, for use by test fixtures.
func (s *StubAuthenticator) Issue(anonymousKey, ballotID []byte) []byte {
	return s.mac(anonymousKey, ballotID)
}

// Verify implements Authenticator.
func (s *StubAuthenticator) Verify(anonymousKey, ballotID, entry []byte) (bool, error) {
	expected := s.mac(anonymousKey, ballotID)
	return hmac.Equal(expected, entry), nil
}

func (s *StubAuthenticator) mac(anonymousKey, ballotID []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(anonymousKey)
	mac.Write([]byte{0})
	mac.Write(ballotID)
	return mac.Sum(nil)
}
