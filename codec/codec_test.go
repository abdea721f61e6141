package codec

import (
	"bytes"
	"testing"
)

type sample struct {
	Zeta  int    `cbor:"zeta"`
	Alpha string `cbor:"alpha"`
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	a := sample{Zeta: 1, Alpha: "x"}
	b := sample{Zeta: 1, Alpha: "x"}

	encodedA, err := MarshalCanonical(a)
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	encodedB, err := MarshalCanonical(b)
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	if !bytes.Equal(encodedA, encodedB) {
		t.Fatal("expected identical encodings for identical values")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := sample{Zeta: 42, Alpha: "hello"}
	data, err := MarshalCanonical(in)
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round-trip mismatch: got %+v want %+v", out, in)
	}
}

func TestHashCanonicalStable(t *testing.T) {
	v := sample{Zeta: 7, Alpha: "stable"}
	h1, err := HashCanonicalHex(v)
	if err != nil {
		t.Fatalf("HashCanonicalHex: %v", err)
	}
	h2, err := HashCanonicalHex(v)
	if err != nil {
		t.Fatalf("HashCanonicalHex: %v", err)
	}
	if h1 != h2 {
		t.Fatal("expected stable hash across calls")
	}
}

func TestPresentationRoundTrip(t *testing.T) {
	in := sample{Zeta: 1, Alpha: "present"}
	data, err := MarshalPresentation(in)
	if err != nil {
		t.Fatalf("MarshalPresentation: %v", err)
	}

	var out sample
	if err := UnmarshalPresentation(data, &out); err != nil {
		t.Fatalf("UnmarshalPresentation: %v", err)
	}
	if out != in {
		t.Fatalf("round-trip mismatch: got %+v want %+v", out, in)
	}
}
