// Copyright 2025 Certen Protocol
//
// Package codec provides the two encodings the log uses: canonical CBOR
// for anything that is hashed or signed, and JSON for presentation only
// (C7). Canonical CBOR follows the same philosophy as the
// validator's canonical-JSON commitment helpers -- deterministic map key
// order, no ambiguous alternate encodings -- but the library's canonical
// mode (length-first map key order, RFC 7049 §3.9, kept as RFC 8949
// §4.2.3) rather than hand-rolled key sorting, since every
// transaction payload here is a Go struct with fixed fields rather than
// arbitrary JSON.
package codec

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	encOpts := cbor.CanonicalEncOptions()
	m, err := encOpts.EncMode()
	if err != nil {
		panic("codec: build canonical CBOR encode mode: " + err.Error())
	}
	encMode = m

	decOpts := cbor.DecOptions{}
	dm, err := decOpts.DecMode()
	if err != nil {
		panic("codec: build CBOR decode mode: " + err.Error())
	}
	decMode = dm
}

// MarshalCanonical encodes v as canonical CBOR: deterministic map key
// order and shortest-form integers, so two callers encoding the same
// logical value always produce byte-identical output -- the property the
// signature scheme and content-derived identifiers both depend on.
func MarshalCanonical(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR-encoded data into v.
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}

// HashCanonical returns the SHA-256 digest of v's canonical CBOR encoding.
func HashCanonical(v interface{}) ([32]byte, error) {
	data, err := MarshalCanonical(v)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// HashCanonicalHex is HashCanonical with a hex-encoded result, used when
// the digest is only needed for logging or a content-addressed identifier
// string rather than further binary processing.
func HashCanonicalHex(v interface{}) (string, error) {
	h, err := HashCanonical(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}
