// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package tag holds the domain-separation labels used throughout the
// PPOPRF core. Every StrobeHash call site uses exactly one of these,
// and no two labels may collide.
package tag

const (
	// DLEQChallenge domain-separates the DLEQ proof's Fiat-Shamir challenge.
	DLEQChallenge = "ppoprf_dleq_hash"

	// ClientInput domain-separates the client's hash-to-group seed.
	ClientInput = "ppoprf_derive_client_input"

	// Finalize domain-separates the client's finalization hash.
	Finalize = "ppoprf_finalize"

	// PPRFExpand domain-separates the GGM tree's seed-expansion PRG.
	PPRFExpand = "ppoprf_pprf_expand"
)
