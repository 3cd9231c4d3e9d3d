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

// Package vectors loads NIST CAVP response (RSP) files for the SP 800-108
// key derivation functions.
package vectors

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Vector is a single CAVP test record: known inputs paired with the
// expected derived keying material.
type Vector struct {
	// Count is the record number within its section.
	Count int

	// OutputBits is the requested output length L in bits.
	OutputBits int64

	// KDK is the key derivation key (KI).
	KDK []byte

	// IV seeds the feedback chain. Only present in feedback files.
	IV []byte

	// FixedInput is the fixed input data for the before/after counter
	// locations.
	FixedInput []byte

	// DataBefore and DataAfter carry the fixed input split around the
	// counter for the MIDDLE_FIXED location.
	DataBefore []byte
	DataAfter  []byte

	// Output is the expected derived keying material (KO).
	Output []byte
}

// Split reports whether the vector supplies its fixed input pre-split
// around the counter.
func (v *Vector) Split() bool {
	return v.DataBefore != nil || v.DataAfter != nil
}

// Matches reports whether got agrees with the vector's expected output.
// The comparison covers the shorter of the two: the CMAC-TDES response
// files list fewer expected bytes than the derived length.
func (v *Vector) Matches(got []byte) bool {
	n := len(got)
	if len(v.Output) < n {
		n = len(v.Output)
	}
	return n > 0 && bytes.Equal(got[:n], v.Output[:n])
}

// Section groups the vectors under one set of RSP bracket headers.
type Section struct {
	// PRF is the raw PRF header value, e.g. "HMAC_SHA256".
	PRF string

	// CounterLocation is the raw CTRLOCATION header value, empty when the
	// section has none.
	CounterLocation string

	// CounterBits is the RLEN header value in bits, zero when the section
	// has none.
	CounterBits int

	// UseCounter reports whether the section's derivations include an
	// iteration counter. Taken from the COUNTER header when present,
	// otherwise implied by the presence of a CTRLOCATION header.
	UseCounter bool

	Vectors []Vector
}

// Parse reads sections of CAVP vectors from an RSP response file.
//
// The format is line based: `[KEY=VALUE]` bracket lines introduce section
// headers, `COUNT=n` starts a new record and the remaining `KEY = VALUE`
// lines fill in hex fields. Comment lines start with '#'. Unrecognized
// fields are ignored.
func Parse(r io.Reader) ([]Section, error) {
	var (
		out        []Section
		sec        Section
		cur        *Vector
		sawCounter bool
	)

	flush := func() {
		if len(sec.Vectors) == 0 {
			return
		}
		if !sawCounter {
			sec.UseCounter = sec.CounterLocation != ""
		}
		out = append(out, sec)
		sec = Section{}
		cur = nil
		sawCounter = false
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			key, value, err := splitField(line[1 : len(line)-1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno, err)
			}
			switch key {
			case "PRF":
				sec.PRF = value
			case "CTRLOCATION":
				sec.CounterLocation = value
			case "RLEN":
				bits, err := strconv.Atoi(strings.TrimSuffix(value, "_BITS"))
				if err != nil {
					return nil, fmt.Errorf("line %d: bad RLEN %q", lineno, value)
				}
				sec.CounterBits = bits
			case "COUNTER":
				sec.UseCounter = strings.EqualFold(value, "TRUE")
				sawCounter = true
			}
			continue
		}

		key, value, err := splitField(line)
		if err != nil {
			// Informational lines such as intermediate values.
			continue
		}

		if key == "COUNT" {
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad COUNT %q", lineno, value)
			}
			sec.Vectors = append(sec.Vectors, Vector{Count: count})
			cur = &sec.Vectors[len(sec.Vectors)-1]
			continue
		}
		if cur == nil {
			continue
		}

		switch key {
		case "L":
			bits, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad L %q", lineno, value)
			}
			cur.OutputBits = bits
		case "KI":
			if cur.KDK, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad KI: %v", lineno, err)
			}
		case "IV":
			if cur.IV, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad IV: %v", lineno, err)
			}
		case "FixedInputData":
			if cur.FixedInput, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad FixedInputData: %v", lineno, err)
			}
		case "DataBeforeCtrData":
			if cur.DataBefore, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad DataBeforeCtrData: %v", lineno, err)
			}
		case "DataAfterCtrData":
			if cur.DataAfter, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad DataAfterCtrData: %v", lineno, err)
			}
		case "KO":
			if cur.Output, err = hex.DecodeString(value); err != nil {
				return nil, fmt.Errorf("line %d: bad KO: %v", lineno, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// ParseFile reads sections of CAVP vectors from the RSP file at path.
func ParseFile(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func splitField(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("not a KEY=VALUE field: %q", line)
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}
