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

// Package prf provides the pseudorandom functions driving the SP 800-108
// key derivation modes.
package prf

import (
	"crypto/aes"
	"crypto/des"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
)

// Error returned if an algorithm has no registered PRF.
var ErrUnsupportedAlgorithm = errors.New("unsupported PRF algorithm")

// Algorithm identifies a pseudorandom function.
type Algorithm int

const (
	HMACSHA1 Algorithm = iota + 1
	HMACSHA224
	HMACSHA256
	HMACSHA384
	HMACSHA512
	CMACAES128
	CMACAES192
	CMACAES256
	CMACTDES3
)

func (a Algorithm) String() string {
	switch a {
	case HMACSHA1:
		return "HMAC-SHA1"
	case HMACSHA224:
		return "HMAC-SHA224"
	case HMACSHA256:
		return "HMAC-SHA256"
	case HMACSHA384:
		return "HMAC-SHA384"
	case HMACSHA512:
		return "HMAC-SHA512"
	case CMACAES128:
		return "CMAC-AES128"
	case CMACAES192:
		return "CMAC-AES192"
	case CMACAES256:
		return "CMAC-AES256"
	case CMACTDES3:
		return "CMAC-TDES3"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// PRF is a stateless pseudorandom function. Compute is deterministic and
// produces exactly OutputSize bytes. Implementations hold no mutable
// state and are safe for concurrent use.
type PRF interface {
	// Compute evaluates the PRF over the message under the given key.
	Compute(key, message []byte) ([]byte, error)

	// OutputSize returns the PRF output size in bytes.
	OutputSize() int
}

// registry maps algorithms to their shared, stateless PRF instances. It
// is never mutated after initialization and is safe for concurrent reads.
var registry = map[Algorithm]PRF{
	HMACSHA1:   hmacPRF{sha1.New, sha1.Size},
	HMACSHA224: hmacPRF{sha256.New224, sha256.Size224},
	HMACSHA256: hmacPRF{sha256.New, sha256.Size},
	HMACSHA384: hmacPRF{sha512.New384, sha512.Size384},
	HMACSHA512: hmacPRF{sha512.New, sha512.Size},
	CMACAES128: cmacPRF{aesCipher, 16, aes.BlockSize},
	CMACAES192: cmacPRF{aesCipher, 24, aes.BlockSize},
	CMACAES256: cmacPRF{aesCipher, 32, aes.BlockSize},
	CMACTDES3:  cmacPRF{tdesCipher, 24, des.BlockSize},
}

// New resolves an algorithm to its PRF. Unsupported algorithms fail here,
// never at compute time.
func New(alg Algorithm) (PRF, error) {
	p, ok := registry[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, alg)
	}
	return p, nil
}
