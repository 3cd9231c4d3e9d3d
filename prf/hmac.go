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
	"crypto/hmac"
	"hash"
)

// hmacPRF implements PRF over an HMAC keyed with the key derivation key.
type hmacPRF struct {
	newHash func() hash.Hash
	size    int
}

func (p hmacPRF) Compute(key, message []byte) ([]byte, error) {
	mac := hmac.New(p.newHash, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

func (p hmacPRF) OutputSize() int {
	return p.size
}
