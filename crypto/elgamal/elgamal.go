// Copyright 2025 Certen Protocol
//
// Package elgamal implements the ElGamal ciphertext type the validator
// consumes (C1, C2) and the final decode-to-bytes step of the threshold
// decryption pipeline. Ballot encryption itself -- like the curve and the
// blind-signature authenticator -- is an external collaborator's concern;
// Encrypt exists here only so tests and reference tooling can build
// realistic fixtures without a second, divergent implementation of the
// wire format.
package elgamal

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/certen/threshold-ballot/crypto/group"
)

// MaxMessageBytes bounds the plaintext a ballot choice may encode: the
// message occupies the high bits of a curve point's x-coordinate, leaving
// one low byte free for the try-and-increment counter used by EncodeToPoint.
const MaxMessageBytes = 30

// curveB is the G1 curve equation constant for BLS12-381: y^2 = x^3 + 4.
var curveB = big.NewInt(4)

// Ciphertext is an ElGamal pair (C1, C2) = (g^r, m*h^r) under a joint
// public key h, per the GLOSSARY definition.
type Ciphertext struct {
	C1 group.Point
	C2 group.Point
}

// Equal compares two ciphertexts component-wise.
func (c Ciphertext) Equal(other Ciphertext) bool {
	return c.C1.Equal(other.C1) && c.C2.Equal(other.C2)
}

// Encrypt encrypts message under the joint public key h using randomness r.
func Encrypt(h group.Point, message []byte, r group.Scalar) (Ciphertext, error) {
	m, err := EncodeToPoint(message)
	if err != nil {
		return Ciphertext{}, err
	}
	g := group.Generator()
	c1 := g.ScalarMult(r)
	hr := h.ScalarMult(r)
	c2 := m.Add(hr)
	return Ciphertext{C1: c1, C2: c2}, nil
}

// EncodeToPoint maps message onto a valid G1 point using the classical
// Koblitz construction: the message occupies the high bits of the x
// coordinate and a one-byte try-and-increment counter occupies the low
// byte, so decoding never needs a discrete-log search -- DecodeFromPoint
// simply right-shifts the counter back off.
func EncodeToPoint(message []byte) (group.Point, error) {
	if len(message) > MaxMessageBytes {
		return group.Point{}, fmt.Errorf("elgamal: message too long: %d > %d bytes", len(message), MaxMessageBytes)
	}

	modulus := fp.Modulus()
	base := new(big.Int).SetBytes(message)
	base.Lsh(base, 8)

	for counter := 0; counter < 256; counter++ {
		x := new(big.Int).Or(base, big.NewInt(int64(counter)))
		if x.Cmp(modulus) >= 0 {
			continue
		}

		rhs := new(big.Int).Exp(x, big.NewInt(3), modulus)
		rhs.Add(rhs, curveB)
		rhs.Mod(rhs, modulus)

		y := new(big.Int).ModSqrt(rhs, modulus)
		if y == nil {
			continue
		}

		var xe, ye fp.Element
		xe.SetBigInt(x)
		ye.SetBigInt(y)
		candidate := bls12381.G1Affine{X: xe, Y: ye}
		if !candidate.IsOnCurve() {
			continue
		}

		encoded := candidate.Bytes()
		p, err := group.PointFromBytes(encoded[:])
		if err != nil {
			continue
		}
		return p, nil
	}

	return group.Point{}, errors.New("elgamal: failed to encode message onto curve after 256 attempts")
}

// DecodeFromPoint recovers the message bytes embedded in a point produced
// by EncodeToPoint, by dropping the low-byte try-and-increment counter.
func DecodeFromPoint(p group.Point) ([]byte, error) {
	raw := p.Bytes()
	decompressed, err := bls12381G1FromCompressed(raw)
	if err != nil {
		return nil, err
	}
	var xBig big.Int
	decompressed.X.BigInt(&xBig)
	xBig.Rsh(&xBig, 8)
	return xBig.Bytes(), nil
}

func bls12381G1FromCompressed(raw []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(raw); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("elgamal: decode point: %w", err)
	}
	return p, nil
}
