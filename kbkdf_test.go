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
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/cybercryptio/kbkdf/prf"
)

func TestDeriveKeyKnownVector(t *testing.T) {
	kdk, err := hex.DecodeString("00112233445566778899AABBCCDDEEFF")
	if err != nil {
		t.Fatalf("decoding KDK: %v", err)
	}
	expected, err := hex.DecodeString("D39D601E90C9B0CB45B2E841313D0D4172A1B3C52AA8D049302B401AEB9EDFB6")
	if err != nil {
		t.Fatalf("decoding expected output: %v", err)
	}

	opts := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}
	got, err := DeriveKey(kdk, "TestLabel", []byte("Vault:1|Box:2|Item:3"), 256, opts)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(got, expected) {
		t.Fatalf("DeriveKey = %x, expected %x", got, expected)
	}
}

func TestDeriveKeyMatchesFixedInputPath(t *testing.T) {
	opts := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}
	label := "label"
	context := []byte("context")

	viaLabel, err := DeriveKey(testKDK, label, context, 384, opts)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	viaFixed, err := DeriveWithFixedInput(testKDK, buildFixedInput(label, context, 384), 384, opts)
	if err != nil {
		t.Fatalf("DeriveWithFixedInput failed: %v", err)
	}
	if !bytes.Equal(viaLabel, viaFixed) {
		t.Fatal("label/context path diverges from the pre-built fixed input path")
	}
}

func TestDeriveDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeCounter, ModeFeedback, ModePipeline} {
		opts := Options{
			Mode:              mode,
			PRF:               prf.HMACSHA256,
			UseCounter:        true,
			CounterLengthBits: 32,
			CounterLocation:   MiddleFixed,
		}
		first, err := DeriveKey(testKDK, "label", []byte("context"), 384, opts)
		if err != nil {
			t.Fatalf("%v: DeriveKey failed: %v", mode, err)
		}
		second, err := DeriveKey(testKDK, "label", []byte("context"), 384, opts)
		if err != nil {
			t.Fatalf("%v: DeriveKey failed: %v", mode, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("%v: identical inputs produced different outputs", mode)
		}
	}
}

func TestDeriveOutputLength(t *testing.T) {
	opts := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}
	cases := []struct {
		bits     int64
		expected int
	}{
		{8, 1},
		{100, 13},
		{256, 32},
		{257, 33},
		{2048, 256},
	}
	for _, c := range cases {
		out, err := DeriveKey(testKDK, "label", nil, c.bits, opts)
		if err != nil {
			t.Fatalf("DeriveKey(%d bits) failed: %v", c.bits, err)
		}
		if len(out) != c.expected {
			t.Fatalf("DeriveKey(%d bits) returned %d bytes, expected %d", c.bits, len(out), c.expected)
		}
	}
}

func TestDeriveNonByteAlignedMasking(t *testing.T) {
	opts := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}
	out, err := DeriveKey(testKDK, "label", nil, 100, opts)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	// 100 = 12*8 + 4: the low 4 bits of the final byte must be zero.
	if out[len(out)-1]&0x0F != 0 {
		t.Fatalf("trailing bits not masked: %x", out[len(out)-1])
	}

	full, err := DeriveKey(testKDK, "label", nil, 104, opts)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if out[len(out)-1]&0xF0 != full[len(full)-1]&0xF0 {
		t.Fatal("masked output must be a bit-prefix of the longer derivation")
	}
}

func TestDeriveSensitivity(t *testing.T) {
	base := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}
	reference, err := DeriveKey(testKDK, "label", []byte("context"), 256, base)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	otherLabel, err := DeriveKey(testKDK, "label2", []byte("context"), 256, base)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(reference, otherLabel) {
		t.Fatal("changing the label must change the output")
	}

	otherContext, err := DeriveKey(testKDK, "label", []byte("context2"), 256, base)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(reference, otherContext) {
		t.Fatal("changing the context must change the output")
	}

	moved := base
	moved.CounterLocation = AfterFixed
	otherLocation, err := DeriveKey(testKDK, "label", []byte("context"), 256, moved)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(reference, otherLocation) {
		t.Fatal("changing the counter location must change the output")
	}

	narrowed := base
	narrowed.CounterLengthBits = 16
	otherWidth, err := DeriveKey(testKDK, "label", []byte("context"), 256, narrowed)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(reference, otherWidth) {
		t.Fatal("changing the counter width must change the output")
	}
}

func TestDeriveValidation(t *testing.T) {
	valid := Options{
		Mode:              ModeCounter,
		PRF:               prf.HMACSHA256,
		CounterLengthBits: 32,
		CounterLocation:   BeforeFixed,
	}

	if _, err := DeriveKey(nil, "label", nil, 256, valid); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty KDK: expected ErrValidation, got %v", err)
	}
	if _, err := DeriveKey(testKDK, "label", nil, 0, valid); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero output length: expected ErrValidation, got %v", err)
	}
	if _, err := DeriveKey(testKDK, "label", nil, -8, valid); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative output length: expected ErrValidation, got %v", err)
	}
	if _, err := DeriveKey(testKDK, "label", nil, DefaultMaxBits+1, valid); !errors.Is(err, ErrValidation) {
		t.Fatalf("over limit: expected ErrValidation, got %v", err)
	}

	limited := valid
	limited.MaxBitsAllowed = 128
	if _, err := DeriveKey(testKDK, "label", nil, 256, limited); !errors.Is(err, ErrValidation) {
		t.Fatalf("over custom limit: expected ErrValidation, got %v", err)
	}

	badWidth := valid
	badWidth.CounterLengthBits = 12
	if _, err := DeriveKey(testKDK, "label", nil, 256, badWidth); !errors.Is(err, ErrValidation) {
		t.Fatalf("unaligned counter width: expected ErrValidation, got %v", err)
	}
	badWidth.CounterLengthBits = 40
	if _, err := DeriveKey(testKDK, "label", nil, 256, badWidth); !errors.Is(err, ErrValidation) {
		t.Fatalf("oversized counter width: expected ErrValidation, got %v", err)
	}
	badWidth.CounterLengthBits = 0
	if _, err := DeriveKey(testKDK, "label", nil, 256, badWidth); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing counter width: expected ErrValidation, got %v", err)
	}

	strayIV := valid
	strayIV.IV = []byte{0x01}
	if _, err := DeriveKey(testKDK, "label", nil, 256, strayIV); !errors.Is(err, ErrValidation) {
		t.Fatalf("IV outside feedback mode: expected ErrValidation, got %v", err)
	}

	badPRF := valid
	badPRF.PRF = 0
	if _, err := DeriveKey(testKDK, "label", nil, 256, badPRF); !errors.Is(err, prf.ErrUnsupportedAlgorithm) {
		t.Fatalf("unknown PRF: expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestDeriveAllPRFs(t *testing.T) {
	algorithms := []prf.Algorithm{
		prf.HMACSHA1, prf.HMACSHA224, prf.HMACSHA256, prf.HMACSHA384, prf.HMACSHA512,
		prf.CMACAES128, prf.CMACAES192, prf.CMACAES256, prf.CMACTDES3,
	}
	for _, mode := range []Mode{ModeCounter, ModeFeedback, ModePipeline} {
		for _, alg := range algorithms {
			opts := Options{
				Mode:              mode,
				PRF:               alg,
				UseCounter:        true,
				CounterLengthBits: 32,
				CounterLocation:   MiddleFixed,
			}
			if mode == ModeCounter {
				opts.CounterLocation = BeforeFixed
			}
			out, err := DeriveKey(testKDK, "label", []byte("context"), 320, opts)
			if err != nil {
				t.Fatalf("%v/%v: DeriveKey failed: %v", mode, alg, err)
			}
			if len(out) != 40 {
				t.Fatalf("%v/%v: got %d bytes, expected 40", mode, alg, len(out))
			}
		}
	}
}
