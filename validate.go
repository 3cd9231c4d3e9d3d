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

import "fmt"

// validateRequest rejects malformed derivation requests before any
// cryptographic work is done. All returned errors wrap ErrValidation.
func validateRequest(kdk []byte, outputBits int64, opts Options) error {
	if len(kdk) == 0 {
		return fmt.Errorf("%w: key derivation key must not be empty", ErrValidation)
	}
	if outputBits <= 0 {
		return fmt.Errorf("%w: output length must be positive, got %d bits", ErrValidation, outputBits)
	}
	if outputBits > opts.maxBits() {
		return fmt.Errorf("%w: output length %d bits exceeds limit of %d bits", ErrValidation, outputBits, opts.maxBits())
	}
	if opts.Mode != ModeCounter && opts.Mode != ModeFeedback && opts.Mode != ModePipeline {
		return fmt.Errorf("%w: unknown mode %d", ErrValidation, opts.Mode)
	}
	if opts.usesCounter() {
		r := opts.CounterLengthBits
		if r < 8 || r > 32 || r%8 != 0 {
			return fmt.Errorf("%w: counter length must be 8, 16, 24 or 32 bits, got %d", ErrValidation, r)
		}
	}
	if len(opts.IV) > 0 && opts.Mode != ModeFeedback {
		return fmt.Errorf("%w: IV is only valid in feedback mode", ErrValidation)
	}
	return nil
}
