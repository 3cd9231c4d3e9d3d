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

import (
	"fmt"

	"github.com/cybercryptio/kbkdf/prf"
)

// Mode selects the SP 800-108 iteration scheme used to produce output
// blocks.
type Mode int

const (
	// ModeCounter derives each block independently from an increasing
	// counter (SP 800-108 section 4.1).
	ModeCounter Mode = iota

	// ModeFeedback chains each block's PRF input on the previous block's
	// output, seeded by an optional IV (SP 800-108 section 4.2).
	ModeFeedback

	// ModePipeline runs two coupled iteration chains, a pure feedback
	// chain over the fixed input and an output chain keyed on it
	// (SP 800-108 section 4.3).
	ModePipeline
)

func (m Mode) String() string {
	switch m {
	case ModeCounter:
		return "counter"
	case ModeFeedback:
		return "feedback"
	case ModePipeline:
		return "pipeline"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// CounterLocation places the encoded counter within each PRF input. For
// the feedback and pipeline modes the location is relative to the
// iteration variable (previous block or A-value) and the fixed input.
type CounterLocation int

const (
	// BeforeFixed places the counter before everything else.
	BeforeFixed CounterLocation = iota

	// AfterFixed places the counter after the fixed input.
	AfterFixed

	// MiddleFixed places the counter inside the fixed input. In counter
	// mode this requires the split-input entry point; in feedback and
	// pipeline mode it places the counter between the iteration variable
	// and the fixed input.
	MiddleFixed
)

// DefaultMaxBits bounds the output length of a derivation when
// Options.MaxBitsAllowed is left zero. Far above any NIST test vector
// while still capping allocation.
const DefaultMaxBits = 1 << 21

// Options configures a single derivation. The zero value is a counter
// mode derivation, but CounterLengthBits must always be set explicitly
// when a counter is in use.
type Options struct {
	// Mode selects the iteration scheme.
	Mode Mode

	// PRF selects the pseudorandom function driving the derivation.
	PRF prf.Algorithm

	// UseCounter includes an iteration counter in each PRF input. Counter
	// mode always uses a counter regardless of this flag.
	UseCounter bool

	// CounterLengthBits is the width of the encoded counter. Must be 8,
	// 16, 24 or 32 whenever a counter is in use.
	CounterLengthBits int

	// CounterLocation places the counter within each PRF input.
	CounterLocation CounterLocation

	// IV seeds the feedback chain. Only valid in feedback mode; an empty
	// IV is permitted.
	IV []byte

	// MaxBitsAllowed caps the requested output length. Zero means
	// DefaultMaxBits.
	MaxBitsAllowed int64
}

func (o *Options) maxBits() int64 {
	if o.MaxBitsAllowed == 0 {
		return DefaultMaxBits
	}
	return o.MaxBitsAllowed
}

func (o *Options) usesCounter() bool {
	return o.Mode == ModeCounter || o.UseCounter
}
