// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package crypto computes NEO-style script hashes. Adapted from the
// teacher's Keccak-based crypto.go: same "hash state wrapper, then a
// thin named function per algorithm" shape, retargeted from Keccak256
// to the ripemd160(sha256(x)) formula a stack VM uses to derive a
// 20-byte script hash from compiled bytecode.
package crypto

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is the NEO script-hash primitive, not a choice of convenience
)

// ScriptHashLength is the byte length of a script hash.
const ScriptHashLength = 20

// Hash160 computes ripemd160(sha256(data)), the script-hash formula
// used throughout this module to derive a 20-byte ScriptHash from
// contract bytecode or from a public key.
func Hash160(data []byte) common.Address {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	var out common.Address
	copy(out[:], r.Sum(nil))
	return out
}

// ScriptHashOf derives the script hash of compiled contract bytecode.
func ScriptHashOf(bytecode []byte) common.Address {
	return Hash160(bytecode)
}
