// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ppoprf

import (
	"github.com/brave-experiments/ppoprf/internal/encoding"
	"github.com/brave-experiments/ppoprf/internal/group"
	"github.com/brave-experiments/ppoprf/internal/strobe"
	"github.com/brave-experiments/ppoprf/internal/tag"
)

// Blind hashes input to a group element and blinds it with a freshly
// sampled scalar r, returning the blinded point to send to the server
// and r to unblind the response. r must be kept secret until Unblind.
func Blind(input []byte) (*Point, *Scalar) {
	digest := strobe.Hash(tag.ClientInput, input)
	point := group.PointFromUniformBytes(digest)
	r := group.RandomScalar()

	return &Point{point: point.Multiply(r)}, r
}

// Verify checks a verifiable Evaluation against the server's public key,
// the original (pre-blind) point, and the tag used to produce it. It
// returns false if eval carries no proof, or if t is not in pub's tag
// set.
func Verify(pub *ServerPublicKey, original *Point, eval *Evaluation, t byte) bool {
	if eval.Proof == nil {
		return false
	}

	publicValue, err := pub.combinedPublicValue(t)
	if err != nil {
		return false
	}

	return eval.Proof.proof.Verify(publicValue, eval.Output.point, original.point)
}

// Unblind removes the blinding factor r from point, recovering the
// server's unblinded evaluation.
func Unblind(point *Point, r *Scalar) *Point {
	return &Point{point: point.point.Multiply(r.Invert())}
}

// Finalize derives the client's final pseudorandom output for (input, t)
// from the unblinded evaluation point.
func Finalize(input []byte, t byte, unblinded *Point, out *[32]byte) {
	data := encoding.Concat(input, []byte{t}, unblinded.Encode())
	digest := strobe.Hash(tag.Finalize, data)
	copy(out[:], digest[:32])
}
