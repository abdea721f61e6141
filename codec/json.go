// Copyright 2025 Certen Protocol
//
// JSON presentation helpers. JSON is never used for hashing or signing --
// only canonical CBOR (cbor.go) is -- but transactions are commonly
// inspected, logged, or shipped to a block explorer as JSON. Fields of
// type group.Point or group.Scalar have only binary marshaling, so they
// render as empty JSON objects and do not decode back; variants carrying
// them do not round-trip through encoding/json.
package codec

import "encoding/json"

// MarshalPresentation renders v as indented JSON for human inspection
// (CLI output, log lines, API responses). It must never be used as input
// to a hash or signature -- canonical CBOR is the only encoding those
// operations accept.
func MarshalPresentation(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// UnmarshalPresentation parses JSON produced by MarshalPresentation or an
// equivalent external tool.
func UnmarshalPresentation(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
