// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ppoprf implements a puncturable partially-oblivious pseudorandom
// function (PPOPRF): a verifiable, partially-oblivious OPRF tweaked per
// metadata tag, built over a puncturable PRF so that a server can
// irrevocably erase its ability to evaluate at a given tag while leaving
// its ability to evaluate at every other tag intact.
//
// A client learns F(sk, t, x) for an input x and a public metadata tag t
// without revealing x to the server; the tag t is public to the server by
// design (this is the "partially-oblivious" half of the name). After the
// server punctures t, no information-theoretic residue of F(sk, t, *)
// remains in its state, giving forward security for past evaluations
// under that tag.
//
// This package is the synchronous, CPU-bound cryptographic core only.
// Networking, persistent key storage, epoch rotation policy, and
// telemetry are the responsibility of a hosting service.
package ppoprf

import "github.com/brave-experiments/ppoprf/internal/group"

// Scalar is a blinding factor returned by Blind and consumed by Unblind.
// It is an alias of the internal scalar type so that callers outside
// this module can hold and pass around the value Blind gives them.
type Scalar = group.Scalar

// Size constants of the wire format.
const (
	// CompressedPointLen is the length, in bytes, of a canonical
	// compressed group element encoding.
	CompressedPointLen = 32

	// DigestLen is the output length, in bytes, of every StrobeHash call.
	DigestLen = 64

	// TagDomain is the number of distinct metadata tags the PPRF covers.
	TagDomain = 256
)
