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

/*
Package kbkdf implements the NIST SP 800-108 key-based key derivation
functions in counter, feedback and double-pipeline iteration mode, over
HMAC and CMAC pseudorandom functions.

Every derivation is a pure function of its inputs: the package holds no
state and all functions are safe for concurrent use.
*/
package kbkdf

import (
	"github.com/cybercryptio/kbkdf/prf"
)

// DeriveKey derives outputBits bits of keying material from the key
// derivation key kdk, a label identifying the purpose of the derived key
// and a context binding it to the involved parties. The fixed input data
// is assembled as label || 0x00 || context || BE32(outputBits).
func DeriveKey(kdk []byte, label string, context []byte, outputBits int64, opts Options) ([]byte, error) {
	if err := validateRequest(kdk, outputBits, opts); err != nil {
		return nil, err
	}
	return derive(kdk, fixedInput{data: buildFixedInput(label, context, outputBits)}, outputBits, opts)
}

// DeriveWithFixedInput derives outputBits bits of keying material using
// caller-supplied fixed input data instead of the label/context layout.
func DeriveWithFixedInput(kdk, fixed []byte, outputBits int64, opts Options) ([]byte, error) {
	if err := validateRequest(kdk, outputBits, opts); err != nil {
		return nil, err
	}
	return derive(kdk, fixedInput{data: fixed}, outputBits, opts)
}

// DeriveWithSplitFixedInput derives outputBits bits of keying material
// with the fixed input data split around the counter. This is the entry
// point for the MiddleFixed counter location and is only valid in counter
// mode.
func DeriveWithSplitFixedInput(kdk, dataBeforeCounter, dataAfterCounter []byte, outputBits int64, opts Options) ([]byte, error) {
	if err := validateRequest(kdk, outputBits, opts); err != nil {
		return nil, err
	}
	if opts.Mode != ModeCounter {
		return nil, ErrInvalidOperation
	}
	return derive(kdk, fixedInput{before: dataBeforeCounter, after: dataAfterCounter, split: true}, outputBits, opts)
}

func derive(kdk []byte, fixed fixedInput, outputBits int64, opts Options) ([]byte, error) {
	p, err := prf.New(opts.PRF)
	if err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModeFeedback:
		return deriveFeedback(p, kdk, fixed.data, outputBits, opts)
	case ModePipeline:
		return derivePipeline(p, kdk, fixed.data, outputBits, opts)
	default:
		return deriveCounter(p, kdk, fixed, outputBits, opts)
	}
}
