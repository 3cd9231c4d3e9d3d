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

import "github.com/cybercryptio/kbkdf/prf"

// deriveCounter implements SP 800-108 counter mode. Each block is the PRF
// of the encoded iteration counter placed before, after or inside the
// fixed input. The MiddleFixed location requires the fixed input to be
// supplied pre-split around the counter.
func deriveCounter(p prf.PRF, kdk []byte, fixed fixedInput, outputBits int64, opts Options) ([]byte, error) {
	if fixed.split != (opts.CounterLocation == MiddleFixed) {
		return nil, ErrInvalidOperation
	}

	outputSize := p.OutputSize()
	reps := repetitions(outputBits, outputSize*8)
	if err := checkCounterRange(reps, opts.CounterLengthBits); err != nil {
		return nil, err
	}

	blocks := make([][]byte, 0, reps)
	for i := int64(1); i <= reps; i++ {
		ctr := encodeCounter(uint32(i), opts.CounterLengthBits)

		var input []byte
		switch opts.CounterLocation {
		case BeforeFixed:
			input = concat(ctr, fixed.data)
		case AfterFixed:
			input = concat(fixed.data, ctr)
		case MiddleFixed:
			input = concat(fixed.before, ctr, fixed.after)
		}

		block, err := p.Compute(kdk, input)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return assemble(blocks, outputBits, outputSize)
}
