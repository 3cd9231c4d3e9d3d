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

package kbkdf

// assemble concatenates the per-iteration PRF outputs and truncates the
// result to exactly outputBits. A non-byte-aligned length keeps the
// top-aligned bits of the final byte and zeroes the rest. Every block
// must be exactly outputSize bytes long.
func assemble(blocks [][]byte, outputBits int64, outputSize int) ([]byte, error) {
	derived := make([]byte, 0, len(blocks)*outputSize)
	for _, block := range blocks {
		if len(block) != outputSize {
			return nil, ErrCorruptState
		}
		derived = append(derived, block...)
	}

	size := int(outputBits / 8)
	extraBits := int(outputBits % 8)
	if extraBits != 0 {
		size++
	}
	if len(derived) < size {
		return nil, ErrInsufficientOutput
	}

	out := derived[:size:size]
	if extraBits != 0 {
		out[size-1] &= 0xFF << uint(8-extraBits)
	}
	return out, nil
}
