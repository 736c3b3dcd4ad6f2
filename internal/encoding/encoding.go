// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides the small base64 and length-check helpers
// shared by the wire-facing types.
package encoding

import (
	"encoding/base64"
	"errors"
)

// ErrInvalidLength is returned when a decoded byte string does not have
// the expected fixed length.
var ErrInvalidLength = errors.New("encoding: invalid length")

// EncodeBase64 returns the standard base64 encoding of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64Fixed decodes s as standard base64 and requires the result
// to be exactly length bytes long.
func DecodeBase64Fixed(s string, length int) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}

	if len(b) != length {
		return nil, ErrInvalidLength
	}

	return b, nil
}

// Concat returns the concatenation of every byte slice in parts.
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
