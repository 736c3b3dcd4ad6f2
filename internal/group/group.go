// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package group wraps github.com/gtank/ristretto255 with the handful of
// operations the PPOPRF core needs: scalar/point arithmetic, canonical
// 32-byte (de)serialization, and the two ways a PPOPRF operation needs to
// map uniform bytes onto a scalar or a group element.
//
// This is the GroupOps collaborator of the design: a trusted, external
// prime-order group library. Nothing here implements curve arithmetic
// itself.
package group

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"github.com/gtank/ristretto255"
)

// Length is the canonical encoded length, in bytes, of both a Scalar and
// a Point in this group.
const Length = 32

// ErrDecode is returned when a byte string is not a canonical encoding of
// a Scalar or Point.
var ErrDecode = errors.New("group: invalid encoding")

// Scalar is an element of the prime order scalar field.
type Scalar struct {
	s *ristretto255.Scalar
}

// Point is an element of the prime order group.
type Point struct {
	e *ristretto255.Element
}

var scalarOne = func() *ristretto255.Scalar {
	buf := make([]byte, Length)
	buf[0] = 1

	s := ristretto255.NewScalar()
	if err := s.Decode(buf); err != nil {
		panic("group: failed to decode canonical scalar one: " + err.Error())
	}

	return s
}()

// Base returns the group's fixed generator.
func Base() *Point {
	return &Point{e: new(ristretto255.Element).ScalarBaseMult(scalarOne)}
}

// RandomScalar samples a uniformly random scalar from the platform CSPRNG.
func RandomScalar() *Scalar {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("group: system CSPRNG failed: " + err.Error())
	}

	return &Scalar{s: ristretto255.NewScalar().FromUniformBytes(buf[:])}
}

// ScalarFromWideBytes reduces 64 uniform bytes to a scalar, as required by
// wide-reduction hash-to-scalar constructions (e.g. the DLEQ challenge).
func ScalarFromWideBytes(b [64]byte) *Scalar {
	return &Scalar{s: ristretto255.NewScalar().FromUniformBytes(b[:])}
}

// ScalarFromDigest reduces a 32-byte digest (e.g. a PPRF leaf) to a scalar
// mod the group order. Unlike DecodeScalar, the input need not be a
// canonical reduced encoding: the high 32 bytes of the wide-reduction
// input are zero, which is equivalent to reducing the 32-byte integer
// directly.
func ScalarFromDigest(b [32]byte) *Scalar {
	var wide [64]byte
	copy(wide[:32], b[:])

	return ScalarFromWideBytes(wide)
}

// DecodeScalar decodes a canonical 32-byte little-endian scalar encoding.
func DecodeScalar(b []byte) (*Scalar, error) {
	if len(b) != Length {
		return nil, ErrDecode
	}

	s := ristretto255.NewScalar()
	if err := s.Decode(b); err != nil {
		return nil, ErrDecode
	}

	return &Scalar{s: s}, nil
}

// Encode returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Encode() []byte {
	return s.s.Encode(make([]byte, 0, Length))
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	zero := make([]byte, Length)
	return subtle.ConstantTimeCompare(s.Encode(), zero) == 1
}

// Add returns s+other as a new scalar.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return &Scalar{s: ristretto255.NewScalar().Add(s.s, other.s)}
}

// Subtract returns s-other as a new scalar.
func (s *Scalar) Subtract(other *Scalar) *Scalar {
	return &Scalar{s: ristretto255.NewScalar().Subtract(s.s, other.s)}
}

// Multiply returns s*other as a new scalar.
func (s *Scalar) Multiply(other *Scalar) *Scalar {
	return &Scalar{s: ristretto255.NewScalar().Multiply(s.s, other.s)}
}

// Invert returns the multiplicative inverse of s.
func (s *Scalar) Invert() *Scalar {
	return &Scalar{s: ristretto255.NewScalar().Invert(s.s)}
}

// Zeroize overwrites s with the zero scalar, erasing its previous value.
func (s *Scalar) Zeroize() {
	zero := make([]byte, Length)
	if err := s.s.Decode(zero); err != nil {
		panic("group: failed to zeroize scalar: " + err.Error())
	}
}

// PointFromUniformBytes maps 64 uniform bytes onto a group element
// (Elligator2 map-then-double, as implemented by the underlying group
// library). This is the HashToGroup primitive of the design: the caller
// is responsible for producing uniform bytes (via StrobeHash).
func PointFromUniformBytes(b [64]byte) *Point {
	return &Point{e: new(ristretto255.Element).FromUniformBytes(b[:])}
}

// DecodePoint decodes a canonical 32-byte compressed point encoding.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != Length {
		return nil, ErrDecode
	}

	e := ristretto255.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, ErrDecode
	}

	return &Point{e: e}, nil
}

// Encode returns the canonical 32-byte compressed encoding of p.
func (p *Point) Encode() []byte {
	return p.e.Encode(make([]byte, 0, Length))
}

// Multiply returns s*p as a new point.
func (p *Point) Multiply(s *Scalar) *Point {
	return &Point{e: new(ristretto255.Element).ScalarMult(s.s, p.e)}
}

// Add returns p+other as a new point.
func (p *Point) Add(other *Point) *Point {
	return &Point{e: new(ristretto255.Element).Add(p.e, other.e)}
}

// Equal reports whether p and other encode the same point.
func (p *Point) Equal(other *Point) bool {
	return subtle.ConstantTimeCompare(p.Encode(), other.Encode()) == 1
}
