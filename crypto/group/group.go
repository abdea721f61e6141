// Copyright 2025 Certen Protocol
//
// Package group wraps the BLS12-381 G1 subgroup from gnark-crypto as the
// prime-order group underlying ElGamal encryption, Schnorr proofs, and
// Chaum-Pedersen DLEQ proofs. Only the group law (point addition, scalar
// multiplication) is used here -- no pairing is ever computed, since
// threshold ElGamal needs nothing but a discrete-log-hard group.
//
// The adaptation follows the same init-once/affine-point idiom as the
// validator's BLS signature package, swapping the pairing-based signature
// scheme for plain discrete-log primitives.
package group

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	initOnce sync.Once
	baseG1   bls12381.G1Affine
)

// Initialize loads the canonical G1 generator. Safe to call repeatedly.
func Initialize() {
	initOnce.Do(func() {
		_, _, g1, _ := bls12381.Generators()
		baseG1 = g1
	})
}

// Generator returns the canonical base point g used throughout the
// election's discrete-log primitives.
func Generator() Point {
	Initialize()
	return Point{p: baseG1}
}

// Scalar is an element of the scalar field backing G1 (order r).
type Scalar struct {
	e fr.Element
}

// RandomScalar samples a uniformly random scalar. It does not exclude
// zero; RandomNonZeroScalar does.
func RandomScalar() (Scalar, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return Scalar{}, fmt.Errorf("sample scalar: %w", err)
	}
	return Scalar{e: s}, nil
}

// ScalarFromUint64 embeds a small integer (e.g. a trustee index) as a scalar.
func ScalarFromUint64(v uint64) Scalar {
	var s fr.Element
	s.SetUint64(v)
	return Scalar{e: s}
}

// ScalarFromBytes interprets data as a big-endian integer reduced mod r.
func ScalarFromBytes(data []byte) Scalar {
	var s fr.Element
	s.SetBytes(data)
	return Scalar{e: s}
}

// Bytes returns the canonical 32-byte big-endian encoding of the scalar.
func (s Scalar) Bytes() [32]byte {
	return s.e.Bytes()
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.e.IsZero()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Scalar) MarshalBinary() ([]byte, error) {
	b := s.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	*s = ScalarFromBytes(data)
	return nil
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	var out fr.Element
	out.Add(&s.e, &other.e)
	return Scalar{e: out}
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	var out fr.Element
	out.Sub(&s.e, &other.e)
	return Scalar{e: out}
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	var out fr.Element
	out.Mul(&s.e, &other.e)
	return Scalar{e: out}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var out fr.Element
	out.Neg(&s.e)
	return Scalar{e: out}
}

// Inverse returns s^-1. Panics if s is zero; callers must keep trustee
// indices distinct and non-zero (enforced by the Election invariant that
// trustee indices lie in [1,255]), which is the only place Inverse is
// called from.
func (s Scalar) Inverse() Scalar {
	var out fr.Element
	if out.Inverse(&s.e) == nil {
		panic("group: inverse of zero scalar")
	}
	return Scalar{e: out}
}

// Equal reports whether two scalars are the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.e.Equal(&other.e)
}

func (s Scalar) bigInt() *big.Int {
	var b big.Int
	s.e.BigInt(&b)
	return &b
}

// Point is an affine point on BLS12-381's G1 subgroup.
type Point struct {
	p bls12381.G1Affine
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.p.IsInfinity()
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	var acc, rhs bls12381.G1Jac
	acc.FromAffine(&p.p)
	rhs.FromAffine(&other.p)
	acc.AddAssign(&rhs)
	var res bls12381.G1Affine
	res.FromJacobian(&acc)
	return Point{p: res}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return p.Add(other.Neg())
}

// Neg returns -p.
func (p Point) Neg() Point {
	out := p.p
	out.Neg(&out)
	return Point{p: out}
}

// ScalarMult returns [s]p.
func (p Point) ScalarMult(s Scalar) Point {
	var out bls12381.G1Affine
	out.ScalarMultiplication(&p.p, s.bigInt())
	return Point{p: out}
}

// Equal reports whether two points are identical.
func (p Point) Equal(other Point) bool {
	return p.p.Equal(&other.p)
}

// Bytes returns the compressed (48-byte) serialization of the point.
func (p Point) Bytes() []byte {
	b := p.p.Bytes()
	return b[:]
}

// Hex returns the compressed point as a hex string.
func (p Point) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// MarshalBinary implements encoding.BinaryMarshaler so Point serializes as
// a compact byte string under canonical CBOR rather than exposing its
// internal field representation.
func (p Point) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Point) UnmarshalBinary(data []byte) error {
	decoded, err := PointFromBytes(data)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// PointFromBytes decompresses a point previously produced by Bytes.
func PointFromBytes(data []byte) (Point, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(data); err != nil {
		return Point{}, fmt.Errorf("decode point: %w", err)
	}
	return Point{p: p}, nil
}

// PointFromHex decompresses a hex-encoded point.
func PointFromHex(s string) (Point, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Point{}, fmt.Errorf("decode point hex: %w", err)
	}
	return PointFromBytes(data)
}

// RandomNonZeroScalar is a convenience wrapper used by proof constructors
// that need a fresh blinding factor distinct from zero.
func RandomNonZeroScalar() (Scalar, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return Scalar{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}
