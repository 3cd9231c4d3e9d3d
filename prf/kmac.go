// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package prf

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// KMAC as specified in NIST SP 800-185 section 4, built on cSHAKE256. It
// backs the one-step KDF from SP 800-108r1 section 5.4.

// Applications shall not select a KMAC tag size below 32 bits, and sizes
// below 64 bits only after careful risk analysis (SP 800-185 section
// 8.4.2). 64 bits is enforced here.
const kmacMinimumTagSize = 8

// cSHAKE256 sponge rate, the bytepad width for the key block.
const cshake256Rate = 136

type kmac struct {
	sha3.ShakeHash
	tagSize int

	// initBlock is the bytepad-encoded key block absorbed right after the
	// cSHAKE initialization, kept so Reset can restore the keyed state.
	initBlock []byte
}

// NewKMAC256 returns a KMAC256 computing a tagSize-byte tag under the
// given key and customization string. The returned hash.Hash does not
// implement encoding.BinaryMarshaler.
func NewKMAC256(key []byte, tagSize int, customizationString []byte) hash.Hash {
	if tagSize < kmacMinimumTagSize {
		panic("prf: KMAC tag size is too small")
	}

	k := &kmac{
		ShakeHash: sha3.NewCShake256([]byte("KMAC"), customizationString),
		tagSize:   tagSize,
	}

	// leftEncode returns at most 9 bytes
	k.initBlock = make([]byte, 0, 9+len(key))
	k.initBlock = append(k.initBlock, leftEncode(uint64(len(key)*8))...)
	k.initBlock = append(k.initBlock, key...)
	k.Write(bytepad(k.initBlock, k.BlockSize()))
	return k
}

// Reset restores the keyed initial state.
func (k *kmac) Reset() {
	k.ShakeHash.Reset()
	k.Write(bytepad(k.initBlock, k.BlockSize()))
}

// BlockSize returns the sponge rate.
func (k *kmac) BlockSize() int {
	return cshake256Rate
}

// Size returns the tag size.
func (k *kmac) Size() int {
	return k.tagSize
}

// Sum appends the current tag to b without changing the underlying state.
func (k *kmac) Sum(b []byte) []byte {
	dup := k.Clone()
	dup.Write(rightEncode(uint64(k.tagSize * 8)))
	tag := make([]byte, k.tagSize)
	dup.Read(tag)
	return append(b, tag...)
}

func bytepad(data []byte, rate int) []byte {
	out := make([]byte, 0, 9+len(data)+rate-1)
	out = append(out, leftEncode(uint64(rate))...)
	out = append(out, data...)
	if padlen := rate - len(out)%rate; padlen < rate {
		out = append(out, make([]byte, padlen)...)
	}
	return out
}

func leftEncode(value uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[1:], value)
	i := byte(1)
	for i < 8 && b[i] == 0 {
		i++
	}
	// Prepend the number of value bytes.
	b[i-1] = 9 - i
	return b[i-1:]
}

func rightEncode(value uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[:8], value)
	i := byte(0)
	for i < 7 && b[i] == 0 {
		i++
	}
	// Append the number of value bytes.
	b[8] = 8 - i
	return b[i:]
}
