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

package vectors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cybercryptio/kbkdf"
	"github.com/cybercryptio/kbkdf/prf"
)

var algorithms = map[string]prf.Algorithm{
	"HMAC_SHA1":   prf.HMACSHA1,
	"HMAC_SHA224": prf.HMACSHA224,
	"HMAC_SHA256": prf.HMACSHA256,
	"HMAC_SHA384": prf.HMACSHA384,
	"HMAC_SHA512": prf.HMACSHA512,
	"CMAC_AES128": prf.CMACAES128,
	"CMAC_AES192": prf.CMACAES192,
	"CMAC_AES256": prf.CMACAES256,
	"CMAC_TDES3":  prf.CMACTDES3,
}

// Algorithm maps the section's PRF header to an engine algorithm. The
// two-key 3DES variant (CMAC_TDES2) is rejected here, before any
// derivation is attempted.
func (s *Section) Algorithm() (prf.Algorithm, error) {
	alg, ok := algorithms[s.PRF]
	if !ok {
		return 0, fmt.Errorf("%w: %q", prf.ErrUnsupportedAlgorithm, s.PRF)
	}
	return alg, nil
}

// Location maps the section's CTRLOCATION header to an engine counter
// location. The *_ITER values of the feedback and pipeline files describe
// the counter's position relative to the iteration variable:
// BEFORE_ITER puts the counter first, AFTER_ITER between the iteration
// variable and the fixed input. A section without the header has no
// counter in its derivations and therefore no location to map.
func (s *Section) Location() (kbkdf.CounterLocation, error) {
	switch s.CounterLocation {
	case "BEFORE_FIXED", "BEFORE_ITER":
		return kbkdf.BeforeFixed, nil
	case "AFTER_FIXED":
		return kbkdf.AfterFixed, nil
	case "MIDDLE_FIXED", "AFTER_ITER":
		return kbkdf.MiddleFixed, nil
	case "":
		return 0, fmt.Errorf("section has no counter location header")
	}
	return 0, fmt.Errorf("unknown counter location %q", s.CounterLocation)
}

// Derive runs the engine in the given mode with the section's
// configuration and the vector's inputs.
func Derive(mode kbkdf.Mode, s *Section, v *Vector) ([]byte, error) {
	alg, err := s.Algorithm()
	if err != nil {
		return nil, err
	}

	opts := kbkdf.Options{
		Mode:              mode,
		PRF:               alg,
		UseCounter:        s.UseCounter,
		CounterLengthBits: s.CounterBits,
		IV:                v.IV,
	}
	// Counter mode always drives a counter, whatever the COUNTER header
	// said; sections that derive without one never consult the location.
	if s.UseCounter || mode == kbkdf.ModeCounter {
		loc, err := s.Location()
		if err != nil {
			return nil, err
		}
		opts.CounterLocation = loc
	}
	if v.Split() {
		return kbkdf.DeriveWithSplitFixedInput(v.KDK, v.DataBefore, v.DataAfter, v.OutputBits, opts)
	}
	return kbkdf.DeriveWithFixedInput(v.KDK, v.FixedInput, v.OutputBits, opts)
}

// ModeForFile guesses the derivation mode from a CAVP file name, e.g.
// "KDFCTR_gen.rsp", "KDFFeedback_gen.rsp", "KDFDblPipeline_gen.rsp".
func ModeForFile(path string) (kbkdf.Mode, bool) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "ctr") || strings.Contains(name, "counter"):
		return kbkdf.ModeCounter, true
	case strings.Contains(name, "feedback"):
		return kbkdf.ModeFeedback, true
	case strings.Contains(name, "pipeline"):
		return kbkdf.ModePipeline, true
	}
	return 0, false
}
