// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ppoprf

import (
	"encoding/json"
	"fmt"

	"github.com/brave-experiments/ppoprf/internal/dleq"
	"github.com/brave-experiments/ppoprf/internal/encoding"
	"github.com/brave-experiments/ppoprf/internal/group"
)

// Point is a canonical compressed group element. On the wire it is a
// base64-encoded string of exactly CompressedPointLen bytes.
type Point struct {
	point *group.Point
}

// DecodePoint decodes the canonical CompressedPointLen-byte encoding of a
// group element.
func DecodePoint(b []byte) (*Point, error) {
	p, err := group.DecodePoint(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return &Point{point: p}, nil
}

// Encode returns the canonical CompressedPointLen-byte encoding of p.
func (p *Point) Encode() []byte {
	return p.point.Encode()
}

// MarshalJSON implements json.Marshaler, encoding the point as a base64
// string.
func (p *Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(encoding.EncodeBase64(p.Encode()))
}

// UnmarshalJSON implements json.Unmarshaler, rejecting any value that does
// not decode to exactly CompressedPointLen bytes.
func (p *Point) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	b, err := encoding.DecodeBase64Fixed(s, CompressedPointLen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	decoded, err := group.DecodePoint(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	p.point = decoded

	return nil
}

// DLEQProof is a non-interactive proof that two point pairs share a
// discrete-log witness, field order (c, s).
type DLEQProof struct {
	proof *dleq.Proof
}

type proofWire struct {
	C string `json:"c"`
	S string `json:"s"`
}

// MarshalJSON implements json.Marshaler. Fields are encoded in (c, s)
// order, each as a base64 canonical 32-byte scalar.
func (d *DLEQProof) MarshalJSON() ([]byte, error) {
	return json.Marshal(proofWire{
		C: encoding.EncodeBase64(d.proof.C.Encode()),
		S: encoding.EncodeBase64(d.proof.S.Encode()),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DLEQProof) UnmarshalJSON(data []byte) error {
	var w proofWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	cb, err := encoding.DecodeBase64Fixed(w.C, group.Length)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	sb, err := encoding.DecodeBase64Fixed(w.S, group.Length)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	c, err := group.DecodeScalar(cb)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	s, err := group.DecodeScalar(sb)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	d.proof = &dleq.Proof{C: c, S: s}

	return nil
}

// Evaluation is the server's response to an Eval call: the evaluated
// point, and (if verifiable evaluation was requested) a DLEQ proof.
type Evaluation struct {
	Output *Point
	Proof  *DLEQProof
}

type evaluationWire struct {
	Output *Point     `json:"output"`
	Proof  *proofWire `json:"proof,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Evaluation) MarshalJSON() ([]byte, error) {
	w := evaluationWire{Output: e.Output}

	if e.Proof != nil {
		w.Proof = &proofWire{
			C: encoding.EncodeBase64(e.Proof.proof.C.Encode()),
			S: encoding.EncodeBase64(e.Proof.proof.S.Encode()),
		}
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Evaluation) UnmarshalJSON(data []byte) error {
	var w evaluationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	e.Output = w.Output

	if w.Proof == nil {
		e.Proof = nil
		return nil
	}

	raw, err := json.Marshal(w.Proof)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	var proof DLEQProof
	if err := proof.UnmarshalJSON(raw); err != nil {
		return err
	}

	e.Proof = &proof

	return nil
}
