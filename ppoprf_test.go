// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ppoprf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brave-experiments/ppoprf"
)

// evalCheck blinds input twice, independently, and has the server
// evaluate and the client unblind each run. Since blind/unblind is the
// identity transform on the evaluated point, both runs must agree: this
// is the property that makes the server's output usable as a PRF value
// despite never seeing input in the clear.
func evalCheck(t *testing.T, server *ppoprf.Server, input []byte, tag byte, verifiable bool) (first, second *ppoprf.Point) {
	t.Helper()

	blinded1, r1 := ppoprf.Blind(input)
	eval1, err := server.Eval(blinded1, tag, verifiable)
	require.NoError(t, err)

	if verifiable {
		require.True(t, ppoprf.Verify(server.PublicKey(), blinded1, eval1, tag))
	}

	blinded2, r2 := ppoprf.Blind(input)
	eval2, err := server.Eval(blinded2, tag, false)
	require.NoError(t, err)

	return ppoprf.Unblind(eval1.Output, r1), ppoprf.Unblind(eval2.Output, r2)
}

func endToEnd(t *testing.T, verifiable bool, tags []byte, tag byte) {
	t.Helper()

	server, err := ppoprf.NewServer(tags)
	require.NoError(t, err)

	input := []byte("some_test_input")

	unblinded, direct := evalCheck(t, server, input, tag, verifiable)
	assert.Equal(t, direct.Encode(), unblinded.Encode())

	var finalA, finalB [32]byte
	ppoprf.Finalize(input, tag, unblinded, &finalA)
	ppoprf.Finalize(input, tag, direct, &finalB)
	assert.Equal(t, finalA, finalB)
}

func TestEndToEndNoVerifySingleTag(t *testing.T) {
	endToEnd(t, false, []byte{0}, 0)
}

func TestEndToEndVerifySingleTag(t *testing.T) {
	endToEnd(t, true, []byte{0}, 0)
}

func TestCloseCanBeRepeated(t *testing.T) {
	server, err := ppoprf.NewServer([]byte{0})
	require.NoError(t, err)

	blinded, _ := ppoprf.Blind([]byte("some_test_input"))
	_, err = server.Eval(blinded, 0, false)
	require.NoError(t, err)

	server.Close()

	// Close is meant to run at teardown, after which the server's secret
	// is gone; calling Eval afterward is not a supported usage and is
	// asserted here only to the extent that Close does not itself panic.
	assert.NotPanics(t, func() { server.Close() })
}

func TestEvalFailsOnUnknownTag(t *testing.T) {
	server, err := ppoprf.NewServer([]byte{0})
	require.NoError(t, err)

	blinded, _ := ppoprf.Blind([]byte("some_test_input"))
	_, err = server.Eval(blinded, 1, true)

	var target *ppoprf.BadTagError
	assert.ErrorAs(t, err, &target)
}

func TestEndToEndNoVerifyMultiTag(t *testing.T) {
	tags := []byte{0, 1, 2, 3, 4}
	for _, tag := range tags {
		endToEnd(t, false, tags, tag)
	}
}

func TestEndToEndVerifyMultiTag(t *testing.T) {
	tags := []byte{0, 1, 2, 3, 4}
	for _, tag := range tags {
		endToEnd(t, true, tags, tag)
	}
}

func TestEndToEndPuncture(t *testing.T) {
	server, err := ppoprf.NewServer([]byte{0, 1})
	require.NoError(t, err)

	unblinded, direct := evalCheck(t, server, []byte("some_test_input"), 1, false)
	assert.Equal(t, direct.Encode(), unblinded.Encode())

	require.NoError(t, server.Puncture(1))

	unblinded0, direct0 := evalCheck(t, server, []byte("another_input"), 0, false)
	assert.Equal(t, direct0.Encode(), unblinded0.Encode())

	blinded, _ := ppoprf.Blind([]byte("some_test_input"))
	_, err = server.Eval(blinded, 1, false)

	var target *ppoprf.NoPrefixFoundError
	assert.ErrorAs(t, err, &target)
}

func TestVerifyRejectsMismatchedTag(t *testing.T) {
	server, err := ppoprf.NewServer([]byte{0, 1})
	require.NoError(t, err)

	blinded, _ := ppoprf.Blind([]byte("some_test_input"))
	evaluation, err := server.Eval(blinded, 0, true)
	require.NoError(t, err)

	assert.False(t, ppoprf.Verify(server.PublicKey(), blinded, evaluation, 1))
}

func TestPointJSONRoundTrip(t *testing.T) {
	blinded, _ := ppoprf.Blind([]byte("anything"))

	data, err := blinded.MarshalJSON()
	require.NoError(t, err)

	var decoded ppoprf.Point
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, blinded.Encode(), decoded.Encode())
}

func TestEvaluationJSONRoundTrip(t *testing.T) {
	server, err := ppoprf.NewServer([]byte{0})
	require.NoError(t, err)

	blinded, _ := ppoprf.Blind([]byte("anything"))
	evaluation, err := server.Eval(blinded, 0, true)
	require.NoError(t, err)

	data, err := evaluation.MarshalJSON()
	require.NoError(t, err)

	var decoded ppoprf.Evaluation
	require.NoError(t, decoded.UnmarshalJSON(data))

	assert.Equal(t, evaluation.Output.Encode(), decoded.Output.Encode())
	require.NotNil(t, decoded.Proof)
	assert.True(t, ppoprf.Verify(server.PublicKey(), blinded, &decoded, 0))
}
