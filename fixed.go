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

import "encoding/binary"

// buildFixedInput assembles the SP 800-108 fixed input data from a label
// and a context: label || 0x00 || context || BE32(outputBits). The label
// must be ASCII; callers validate this before deriving.
func buildFixedInput(label string, context []byte, outputBits int64) []byte {
	fixed := make([]byte, 0, len(label)+1+len(context)+4)
	fixed = append(fixed, label...)
	fixed = append(fixed, 0x00)
	fixed = append(fixed, context...)
	return binary.BigEndian.AppendUint32(fixed, uint32(outputBits))
}

// fixedInput carries the mode-independent part of each PRF input, either
// whole or pre-split around a MiddleFixed counter.
type fixedInput struct {
	data   []byte
	before []byte
	after  []byte
	split  bool
}
