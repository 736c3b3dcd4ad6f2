// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package dleq implements a non-interactive Chaum-Pedersen proof of
// discrete-log equality: given public (B, X, Y, Q), a proof convinces a
// verifier that the prover knows k with X = k*B and Q = k*Y, i.e. that
// log_B(X) == log_Y(Q), without revealing k.
package dleq

import (
	"github.com/brave-experiments/ppoprf/internal/group"
	"github.com/brave-experiments/ppoprf/internal/strobe"
	"github.com/brave-experiments/ppoprf/internal/tag"
)

// Proof is a non-interactive DLEQ proof (c, s).
type Proof struct {
	C *group.Scalar
	S *group.Scalar
}

// Prove returns a proof that log_B(x) == log_y(q), where the caller
// knows k such that x = k*B and q = k*y for some public y. The ordering
// of points fed to the challenge hash, (B, x, y, q, t1, t2), is fixed by
// the wire contract and must never change.
func Prove(k *group.Scalar, x, y, q *group.Point) *Proof {
	t := group.RandomScalar()
	t1 := group.Base().Multiply(t)
	t2 := y.Multiply(t)

	c := challenge(x, y, q, t1, t2)
	s := t.Subtract(c.Multiply(k))

	return &Proof{C: c, S: s}
}

// Verify checks that the proof attests log_B(x) == log_y(q).
func (proof *Proof) Verify(x, y, q *group.Point) bool {
	a := group.Base().Multiply(proof.S).Add(x.Multiply(proof.C))
	b := y.Multiply(proof.S).Add(q.Multiply(proof.C))

	cPrime := challenge(x, y, q, a, b)

	return constantTimeScalarEqual(cPrime, proof.C)
}

func constantTimeScalarEqual(a, b *group.Scalar) bool {
	ae, be := a.Encode(), b.Encode()
	if len(ae) != len(be) {
		return false
	}

	diff := byte(0)
	for i := range ae {
		diff |= ae[i] ^ be[i]
	}

	return diff == 0
}

// challenge hashes the six canonical point encodings, in the fixed wire
// order (B, x, y, q, t1, t2), to a scalar via wide reduction.
func challenge(x, y, q, t1, t2 *group.Point) *group.Scalar {
	points := [6]*group.Point{group.Base(), x, y, q, t1, t2}

	input := make([]byte, 0, len(points)*group.Length)
	for _, pt := range points {
		input = append(input, pt.Encode()...)
	}

	digest := strobe.Hash(tag.DLEQChallenge, input)

	return group.ScalarFromWideBytes(digest)
}
