// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ppoprf

import (
	"github.com/brave-experiments/ppoprf/internal/dleq"
	"github.com/brave-experiments/ppoprf/internal/group"
	"github.com/brave-experiments/ppoprf/internal/pprf"
)

// ServerPublicKey holds the public material a server shares with its
// clients: the base OPRF public key, and one metadata public key per tag
// the server was set up to evaluate. It is cheaply cloneable and safe to
// share freely; none of its fields are secret.
type ServerPublicKey struct {
	basePK *Point
	mdPKs  map[byte]*Point
}

// Get returns the metadata public key for tag t, or false if t is not
// part of this server's tag set.
func (pk *ServerPublicKey) Get(t byte) (*Point, bool) {
	p, ok := pk.mdPKs[t]
	return p, ok
}

// Clone returns a deep copy of pk.
func (pk *ServerPublicKey) Clone() *ServerPublicKey {
	mdPKs := make(map[byte]*Point, len(pk.mdPKs))
	for t, p := range pk.mdPKs {
		mdPKs[t] = &Point{point: p.point}
	}

	return &ServerPublicKey{basePK: &Point{point: pk.basePK.point}, mdPKs: mdPKs}
}

func (pk *ServerPublicKey) combinedPublicValue(t byte) (*group.Point, error) {
	mdPK, ok := pk.mdPKs[t]
	if !ok {
		return nil, &BadTagError{Tag: t}
	}

	return pk.basePK.point.Add(mdPK.point), nil
}

// Server runs the server side of the PPOPRF protocol: it holds the long
// term OPRF key, the per-tag public key material derived from the
// puncturable PRF, and the PRF tree itself.
type Server struct {
	oprfKey   *group.Scalar
	publicKey *ServerPublicKey
	pprf      *pprf.Tree
}

// NewServer samples a fresh OPRF key and PPRF tree, and derives a
// metadata public key for every tag in tags. tags must not contain
// duplicates; a duplicate simply overwrites the earlier entry.
func NewServer(tags []byte) (*Server, error) {
	tree := pprf.Setup()

	mdPKs := make(map[byte]*Point, len(tags))
	for _, t := range tags {
		leaf, err := tree.Eval(t)
		if err != nil {
			return nil, err
		}

		ts := group.ScalarFromDigest(leaf)
		mdPKs[t] = &Point{point: group.Base().Multiply(ts)}
	}

	oprfKey := group.RandomScalar()

	return &Server{
		oprfKey: oprfKey,
		publicKey: &ServerPublicKey{
			basePK: &Point{point: group.Base().Multiply(oprfKey)},
			mdPKs:  mdPKs,
		},
		pprf: tree,
	}, nil
}

// PublicKey returns a clone of the server's public key material.
func (s *Server) PublicKey() *ServerPublicKey {
	return s.publicKey.Clone()
}

// Eval evaluates the PPOPRF at the blinded point for the given tag. If
// verifiable is true, the returned Evaluation carries a DLEQ proof that
// the client can check against the server's public key without learning
// the server's secret key.
//
// Eval fails with *BadTagError if t was not part of the tag set given to
// NewServer, and with *NoPrefixFoundError if t has since been punctured.
func (s *Server) Eval(point *Point, t byte, verifiable bool) (*Evaluation, error) {
	if _, ok := s.publicKey.Get(t); !ok {
		return nil, &BadTagError{Tag: t}
	}

	leaf, err := s.pprf.Eval(t)
	if err != nil {
		return nil, err
	}

	ts := group.ScalarFromDigest(leaf)
	taggedKey := s.oprfKey.Add(ts)
	evalPoint := point.point.Multiply(taggedKey.Invert())

	var proof *DLEQProof

	if verifiable {
		publicValue, err := s.publicKey.combinedPublicValue(t)
		if err != nil {
			return nil, err
		}

		proof = &DLEQProof{proof: dleq.Prove(taggedKey, publicValue, evalPoint, point.point)}
	}

	return &Evaluation{Output: &Point{point: evalPoint}, Proof: proof}, nil
}

// Puncture irrevocably removes t from the set of tags this server can
// evaluate at. It fails with *NoPrefixFoundError if t was already
// punctured (or never covered).
//
// Puncture changes only the PPRF state: the server's public key is left
// as it is, so PublicKey still returns a metadata public key for t
// afterwards. Server holds no lock; Puncture must not run concurrently
// with Eval on the same Server.
func (s *Server) Puncture(t byte) error {
	return s.pprf.Puncture(t)
}

// Close wipes the server's long-term OPRF key. After Close, every method
// on s other than Close itself is unsafe to call. Callers that own a
// Server for its full lifetime should defer Close at construction time.
func (s *Server) Close() {
	s.oprfKey.Zeroize()
}
