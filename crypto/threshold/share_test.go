package threshold

import (
	"testing"

	"github.com/certen/threshold-ballot/crypto/elgamal"
	"github.com/certen/threshold-ballot/crypto/group"
	"github.com/certen/threshold-ballot/crypto/keygen"
)

func TestProduceVerifyRoundTrip(t *testing.T) {
	secret, _ := group.RandomScalar()
	proof, err := keygen.Prove(secret)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	r, _ := group.RandomScalar()
	c1 := group.Generator().ScalarMult(r)

	share, err := Produce(secret, c1)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	ciphertext := elgamal.Ciphertext{C1: c1}
	if !share.Verify(proof, ciphertext) {
		t.Fatal("Verify rejected a genuine share")
	}
}

func TestVerifyRejectsTamperedShare(t *testing.T) {
	secret, _ := group.RandomScalar()
	proof, err := keygen.Prove(secret)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	r, _ := group.RandomScalar()
	c1 := group.Generator().ScalarMult(r)

	share, err := Produce(secret, c1)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	other, _ := group.RandomScalar()
	share.Share = c1.ScalarMult(other)

	ciphertext := elgamal.Ciphertext{C1: c1}
	if share.Verify(proof, ciphertext) {
		t.Fatal("Verify accepted a share swapped for a different secret")
	}
}

func TestVerifyRejectsMismatchedPublicKey(t *testing.T) {
	secret, _ := group.RandomScalar()
	r, _ := group.RandomScalar()
	c1 := group.Generator().ScalarMult(r)

	share, err := Produce(secret, c1)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	wrongSecret, _ := group.RandomScalar()
	wrongProof, err := keygen.Prove(wrongSecret)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	ciphertext := elgamal.Ciphertext{C1: c1}
	if share.Verify(wrongProof, ciphertext) {
		t.Fatal("Verify accepted a share against an unrelated trustee's public key proof")
	}
}

// trusteePoly evaluates a degree-(threshold-1) polynomial with the given
// coefficients (coefficients[0] is the joint secret) at x.
func trusteePoly(coefficients []group.Scalar, x uint8) group.Scalar {
	result := coefficients[0]
	xPow := group.ScalarFromUint64(1)
	xs := group.ScalarFromUint64(uint64(x))
	for i := 1; i < len(coefficients); i++ {
		xPow = xPow.Mul(xs)
		result = result.Add(coefficients[i].Mul(xPow))
	}
	return result
}

func TestCombineReconstructsPlaintext(t *testing.T) {
	a1, _ := group.RandomScalar()
	jointSecret, _ := group.RandomScalar()
	coefficients := []group.Scalar{jointSecret, a1}

	jointPublicKey := group.Generator().ScalarMult(jointSecret)

	r, _ := group.RandomScalar()
	msg := []byte("Alice")
	ciphertext, err := elgamal.Encrypt(jointPublicKey, msg, r)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	allIndices := []uint8{1, 2, 3}
	shares := make(map[uint8]TrusteeShare)
	for _, idx := range allIndices {
		trusteeSecret := trusteePoly(coefficients, idx)
		share, err := Produce(trusteeSecret, ciphertext.C1)
		if err != nil {
			t.Fatalf("Produce(%d): %v", idx, err)
		}
		shares[idx] = TrusteeShare{Index: idx, Share: share}
	}

	subsets := [][]uint8{{1, 2}, {1, 3}, {2, 3}}
	for _, subset := range subsets {
		quorum := make([]TrusteeShare, 0, len(subset))
		for _, idx := range subset {
			quorum = append(quorum, shares[idx])
		}
		plaintext, err := Combine(ciphertext, 2, quorum)
		if err != nil {
			t.Fatalf("Combine(%v): %v", subset, err)
		}
		if string(plaintext) != string(msg) {
			t.Fatalf("Combine(%v): got %q want %q", subset, plaintext, msg)
		}
	}
}

func TestCombineRejectsBelowThreshold(t *testing.T) {
	secret, _ := group.RandomScalar()
	r, _ := group.RandomScalar()
	jointPublicKey := group.Generator().ScalarMult(secret)
	ciphertext, err := elgamal.Encrypt(jointPublicKey, []byte("x"), r)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	share, err := Produce(secret, ciphertext.C1)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	_, err = Combine(ciphertext, 2, []TrusteeShare{{Index: 1, Share: share}})
	if err == nil {
		t.Fatal("expected NotEnoughSharesError")
	}
	if _, ok := err.(*NotEnoughSharesError); !ok {
		t.Fatalf("expected *NotEnoughSharesError, got %T", err)
	}
}
