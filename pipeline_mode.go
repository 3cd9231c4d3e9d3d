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

// derivePipeline implements SP 800-108 double-pipeline iteration mode.
// The A-chain is a pure feedback chain seeded with the fixed input,
// A(i) = PRF(kdk, A(i-1)) with A(0) = fixed input. Each output block is
// the PRF over the corresponding A-value, the fixed input and, when
// enabled, the iteration counter. The A-chain never depends on the
// counter.
func derivePipeline(p prf.PRF, kdk, fixed []byte, outputBits int64, opts Options) ([]byte, error) {
	outputSize := p.OutputSize()
	reps := repetitions(outputBits, outputSize*8)
	if opts.UseCounter {
		if err := checkCounterRange(reps, opts.CounterLengthBits); err != nil {
			return nil, err
		}
	}

	a := fixed
	blocks := make([][]byte, 0, reps)
	for i := int64(1); i <= reps; i++ {
		var err error
		a, err = p.Compute(kdk, a)
		if err != nil {
			return nil, err
		}

		var ctr []byte
		if opts.UseCounter {
			ctr = encodeCounter(uint32(i), opts.CounterLengthBits)
		}

		block, err := p.Compute(kdk, iterationInput(opts.CounterLocation, a, ctr, fixed))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return assemble(blocks, outputBits, outputSize)
}
