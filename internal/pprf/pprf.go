// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package pprf implements a puncturable pseudorandom function over the
// one-byte domain {0,...,255}, realized as a GGM tree of depth 8: a PRG
// applied to a seed doubles its length, and the two halves become the
// seeds of the left and right children. Puncturing a tag expands the
// seed that currently covers it down to the leaf, keeping every sibling
// along the way and discarding every seed on the path itself, so the
// erased leaf becomes information-theoretically unrecoverable from the
// remaining state.
package pprf

import (
	"crypto/rand"
	"fmt"

	"github.com/brave-experiments/ppoprf/internal/strobe"
	"github.com/brave-experiments/ppoprf/internal/tag"
)

// Depth is the number of levels in the GGM tree; the domain has 2^Depth
// leaves.
const Depth = 8

// Domain is the number of distinct tags the tree covers.
const Domain = 1 << Depth

// SeedLen is the length, in bytes, of a tree seed and of a leaf output.
const SeedLen = 32

// NoPrefixFoundError is returned by Eval and Puncture when the tag they
// were given is not covered by any seed currently held by the tree
// (either it was already punctured, or, for Eval, it never was covered).
type NoPrefixFoundError struct {
	Tag byte
}

func (e *NoPrefixFoundError) Error() string {
	return fmt.Sprintf("pprf: no covering prefix found for tag %d", e.Tag)
}

// coverKey names one node of the tree: the top `depth` bits of every tag
// in its subtree, stored right-aligned in prefix's low `depth` bits.
type coverKey struct {
	depth  uint8
	prefix uint8
}

// Tree is a puncturable PRF state: the minimal set of subtree-root seeds
// whose leaves are exactly the non-punctured tags.
type Tree struct {
	cover map[coverKey][]byte
}

// Setup returns a fresh tree covering the entire domain, rooted at a
// single randomly sampled seed.
func Setup() *Tree {
	root := make([]byte, SeedLen)
	if _, err := rand.Read(root); err != nil {
		panic("pprf: system CSPRNG failed: " + err.Error())
	}

	return &Tree{
		cover: map[coverKey][]byte{
			{depth: 0, prefix: 0}: root,
		},
	}
}

func covers(k coverKey, x byte) bool {
	if k.depth == 0 {
		return true
	}

	return x>>(8-k.depth) == k.prefix
}

func (t *Tree) find(x byte) (coverKey, []byte, bool) {
	for k, seed := range t.cover {
		if covers(k, x) {
			return k, seed, true
		}
	}

	return coverKey{}, nil, false
}

// expand is the tree's length-doubling PRG: StrobeHash under a label
// private to the PPRF, split into left and right 32-byte child seeds.
func expand(seed []byte) (left, right [SeedLen]byte) {
	digest := strobe.Hash(tag.PPRFExpand, seed)
	copy(left[:], digest[:SeedLen])
	copy(right[:], digest[SeedLen:])

	return left, right
}

func bitAt(x byte, depth uint8) byte {
	return (x >> (8 - 1 - depth)) & 1
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Eval returns the leaf value for tag x, deriving it by walking down from
// the seed that currently covers x. It fails with *NoPrefixFoundError if
// x has been punctured (or was never in the tree's initial domain).
func (t *Tree) Eval(x byte) ([SeedLen]byte, error) {
	k, seed, ok := t.find(x)
	if !ok {
		return [SeedLen]byte{}, &NoPrefixFoundError{Tag: x}
	}

	cur := append([]byte(nil), seed...)
	for depth := k.depth; depth < Depth; depth++ {
		left, right := expand(cur)
		zero(cur)

		if bitAt(x, depth) == 0 {
			cur = append(cur[:0], left[:]...)
		} else {
			cur = append(cur[:0], right[:]...)
		}
	}

	var out [SeedLen]byte
	copy(out[:], cur)
	zero(cur)

	return out, nil
}

// Puncture removes x from the tree's covered domain. The seed covering x
// is expanded one level at a time down to x's leaf; at each level the
// sibling subtree's seed is kept as a new cover seed and the on-path seed
// is discarded, so that no surviving seed can derive x's leaf value.
//
// Puncturing an already-punctured tag fails with *NoPrefixFoundError.
func (t *Tree) Puncture(x byte) error {
	k, seed, ok := t.find(x)
	if !ok {
		return &NoPrefixFoundError{Tag: x}
	}

	delete(t.cover, k)
	cur := append([]byte(nil), seed...)
	zero(seed)

	for depth := k.depth; depth < Depth; depth++ {
		left, right := expand(cur)
		zero(cur)

		onPathPrefix := x >> (8 - depth - 1)
		siblingPrefix := onPathPrefix ^ 1

		var onPath, sibling [SeedLen]byte
		if bitAt(x, depth) == 0 {
			onPath, sibling = left, right
		} else {
			onPath, sibling = right, left
		}

		t.cover[coverKey{depth: depth + 1, prefix: siblingPrefix}] = append([]byte(nil), sibling[:]...)
		zero(sibling[:])

		cur = append(cur[:0], onPath[:]...)
		zero(onPath[:])
	}

	zero(cur)

	return nil
}
