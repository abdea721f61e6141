package ids

import "testing"

func TestRoundTrip(t *testing.T) {
	id, err := NewForElection()
	if err != nil {
		t.Fatalf("NewForElection: %v", err)
	}

	rendered := id.String()
	if len(rendered) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(rendered))
	}

	parsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(id) {
		t.Fatalf("round-trip mismatch: %+v != %+v", parsed, id)
	}
}

func TestParseRejectsNonHex(t *testing.T) {
	bad := make([]byte, 64)
	for i := range bad {
		bad[i] = 'z'
	}
	if _, err := Parse(string(bad)); err == nil {
		t.Fatal("expected error for non-hex input")
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := Parse("abcd"); err == nil {
		t.Fatal("expected error for short input")
	}
	over := make([]byte, 130)
	for i := range over {
		over[i] = 'a'
	}
	if _, err := Parse(string(over)); err == nil {
		t.Fatal("expected error for long input")
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	id, _ := NewForElection()
	raw := id.Bytes()
	raw[ElectionIDSize] = 0xFF
	if _, err := FromBytes(raw[:]); err == nil {
		t.Fatal("expected error for unknown type byte")
	}
}

func TestSameElection(t *testing.T) {
	election, _ := NewForElection()
	vote, _ := NewRandom(election, Vote)
	if !election.SameElection(vote) {
		t.Fatal("vote should share election scope with its election")
	}

	other, _ := NewForElection()
	if election.SameElection(other) {
		t.Fatal("two independently random elections should not collide")
	}
}
