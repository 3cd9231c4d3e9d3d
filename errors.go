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

import "errors"

// Error returned if a derivation request fails validation before any PRF
// computation takes place.
var ErrValidation = errors.New("invalid derivation request")

// Error returned if the requested output length needs more PRF iterations
// than the configured counter width can address.
var ErrCounterOverflow = errors.New("requested output exceeds counter range")

// Error returned if a derivation is invoked through the wrong entry point,
// e.g. a MiddleFixed counter location without split fixed input.
var ErrInvalidOperation = errors.New("invalid call path for the configured counter location")

// Error returned if a PRF produces output of an unexpected size. This
// indicates a broken PRF adapter and is never recovered from.
var ErrCorruptState = errors.New("PRF output has unexpected size")

// Error returned if the concatenated PRF outputs cover fewer bits than
// requested. Defensive check, should not occur with a correct repetition
// count.
var ErrInsufficientOutput = errors.New("derived fewer bits than requested")
