// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ppoprf

import (
	"errors"
	"fmt"

	"github.com/brave-experiments/ppoprf/internal/pprf"
)

// ErrSerialization indicates a wire value was not a valid encoding: wrong
// length once base64-decoded, or a point/scalar that does not decompress.
var ErrSerialization = errors.New("ppoprf: invalid serialization")

// NoPrefixFoundError indicates the PPRF cover no longer covers the given
// tag: it has been punctured. This is a type alias of the internal pprf
// package's error so that errors.As works uniformly regardless of which
// layer detects the condition.
type NoPrefixFoundError = pprf.NoPrefixFoundError

// BadTagError indicates tag was never present in the server's public-key
// map, i.e. it was not part of the tag set given to NewServer.
type BadTagError struct {
	Tag byte
}

// Error implements the error interface.
func (e *BadTagError) Error() string {
	return fmt.Sprintf("ppoprf: tag %d not present in server public key", e.Tag)
}
