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

// encodeCounter returns the big-endian encoding of i truncated to
// lengthBits, which must be 8, 16, 24 or 32. The caller ensures that i
// fits the requested width.
func encodeCounter(i uint32, lengthBits int) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, i)
	return buf[4-lengthBits/8:]
}

// repetitions returns the number of PRF invocations needed to cover
// outputBits given a PRF producing prfBits per invocation.
func repetitions(outputBits int64, prfBits int) int64 {
	return (outputBits + int64(prfBits) - 1) / int64(prfBits)
}

// checkCounterRange rejects repetition counts the counter width cannot
// address.
func checkCounterRange(reps int64, lengthBits int) error {
	if reps > (int64(1)<<uint(lengthBits))-1 {
		return ErrCounterOverflow
	}
	return nil
}

// iterationInput assembles the PRF input for the feedback and pipeline
// modes from the iteration variable (previous block or A-value), the
// encoded counter (nil when no counter is used) and the fixed input.
func iterationInput(loc CounterLocation, iter, ctr, fixed []byte) []byte {
	if ctr == nil {
		return concat(iter, fixed)
	}
	switch loc {
	case BeforeFixed:
		return concat(ctr, iter, fixed)
	case MiddleFixed:
		return concat(iter, ctr, fixed)
	default:
		return concat(iter, fixed, ctr)
	}
}

func concat(parts ...[]byte) []byte {
	size := 0
	for _, part := range parts {
		size += len(part)
	}
	out := make([]byte, 0, size)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}
