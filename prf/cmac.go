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
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"github.com/aead/cmac"
)

// cmacPRF implements PRF over a CMAC. The PRF output size equals the
// cipher block size: 16 bytes for AES, 8 bytes for 3DES.
type cmacPRF struct {
	newCipher func(key []byte) (cipher.Block, error)
	keySize   int
	blockSize int
}

// adjustKey fits the key derivation key to the cipher's key size by
// zero-padding a short key and truncating a long one. The NIST CAVP
// CMAC-TDES vectors depend on this behavior; it is a vector-driven
// special case, not general key handling practice.
func (p cmacPRF) adjustKey(key []byte) []byte {
	adjusted := make([]byte, p.keySize)
	copy(adjusted, key)
	return adjusted
}

func (p cmacPRF) Compute(key, message []byte) ([]byte, error) {
	block, err := p.newCipher(p.adjustKey(key))
	if err != nil {
		return nil, err
	}

	mac, err := cmac.New(block)
	if err != nil {
		return nil, err
	}
	mac.Write(message)
	return mac.Sum(nil), nil
}

func (p cmacPRF) OutputSize() int {
	return p.blockSize
}

func aesCipher(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

func tdesCipher(key []byte) (cipher.Block, error) {
	return des.NewTripleDESCipher(key)
}
