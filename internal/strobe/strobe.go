// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package strobe provides the single labeled extendable-output hash used
// by the PPOPRF core, built on the Strobe protocol framework.
package strobe

import (
	"github.com/mimoo/StrobeGo/strobe"
)

// DigestLen is the fixed output length every call site of Hash requires.
const DigestLen = 64

// Hash returns DigestLen bytes that are a cryptographic function of
// (label, input). Distinct labels yield independent random oracles.
//
// Every call site in this module requests exactly DigestLen bytes; this
// is a design invariant of the core, not a general-purpose XOF wrapper,
// so the signature does not take a length parameter.
func Hash(label string, input []byte) [DigestLen]byte {
	s := strobe.InitStrobe(label, strobe.Bit128)
	s.KEY(input)

	out := s.PRF(DigestLen)

	var digest [DigestLen]byte
	copy(digest[:], out)

	return digest
}
