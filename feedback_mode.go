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

// deriveFeedback implements SP 800-108 feedback mode. The first
// iteration's feedback value is the IV, which may be empty; each later
// iteration feeds on the previous block. The loop-carried dependency
// makes the iterations inherently sequential.
func deriveFeedback(p prf.PRF, kdk, fixed []byte, outputBits int64, opts Options) ([]byte, error) {
	outputSize := p.OutputSize()
	reps := repetitions(outputBits, outputSize*8)
	if opts.UseCounter {
		if err := checkCounterRange(reps, opts.CounterLengthBits); err != nil {
			return nil, err
		}
	}

	prev := opts.IV
	blocks := make([][]byte, 0, reps)
	for i := int64(1); i <= reps; i++ {
		var ctr []byte
		if opts.UseCounter {
			ctr = encodeCounter(uint32(i), opts.CounterLengthBits)
		}

		block, err := p.Compute(kdk, iterationInput(opts.CounterLocation, prev, ctr, fixed))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		prev = block
	}

	return assemble(blocks, outputBits, outputSize)
}
