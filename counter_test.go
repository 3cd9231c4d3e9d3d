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
	"testing"
)

func TestEncodeCounter(t *testing.T) {
	cases := []struct {
		value    uint32
		bits     int
		expected []byte
	}{
		{1, 8, []byte{0x01}},
		{1, 16, []byte{0x00, 0x01}},
		{1, 24, []byte{0x00, 0x00, 0x01}},
		{1, 32, []byte{0x00, 0x00, 0x00, 0x01}},
		{0x0102, 8, []byte{0x02}},
		{0x01020304, 16, []byte{0x03, 0x04}},
		{0xFFFFFFFF, 32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		if got := encodeCounter(c.value, c.bits); !bytes.Equal(got, c.expected) {
			t.Fatalf("encodeCounter(%d, %d) = %x, expected %x", c.value, c.bits, got, c.expected)
		}
	}
}

func TestRepetitions(t *testing.T) {
	cases := []struct {
		outputBits int64
		prfBits    int
		expected   int64
	}{
		{256, 256, 1},
		{257, 256, 2},
		{255, 256, 1},
		{1, 128, 1},
		{512, 128, 4},
	}
	for _, c := range cases {
		if got := repetitions(c.outputBits, c.prfBits); got != c.expected {
			t.Fatalf("repetitions(%d, %d) = %d, expected %d", c.outputBits, c.prfBits, got, c.expected)
		}
	}
}

func TestCheckCounterRange(t *testing.T) {
	if err := checkCounterRange(255, 8); err != nil {
		t.Fatalf("255 reps must fit an 8 bit counter: %v", err)
	}
	if err := checkCounterRange(256, 8); err != ErrCounterOverflow {
		t.Fatalf("expected ErrCounterOverflow, got %v", err)
	}
	if err := checkCounterRange(1<<32-1, 32); err != nil {
		t.Fatalf("2^32-1 reps must fit a 32 bit counter: %v", err)
	}
	if err := checkCounterRange(1<<32, 32); err != ErrCounterOverflow {
		t.Fatalf("expected ErrCounterOverflow, got %v", err)
	}
}

func TestIterationInput(t *testing.T) {
	iter := []byte{0xAA}
	ctr := []byte{0x01}
	fixed := []byte{0xBB}

	cases := []struct {
		loc      CounterLocation
		expected []byte
	}{
		{BeforeFixed, []byte{0x01, 0xAA, 0xBB}},
		{MiddleFixed, []byte{0xAA, 0x01, 0xBB}},
		{AfterFixed, []byte{0xAA, 0xBB, 0x01}},
	}
	for _, c := range cases {
		if got := iterationInput(c.loc, iter, ctr, fixed); !bytes.Equal(got, c.expected) {
			t.Fatalf("iterationInput(%d) = %x, expected %x", c.loc, got, c.expected)
		}
	}

	// Without a counter the location must not matter.
	for _, loc := range []CounterLocation{BeforeFixed, MiddleFixed, AfterFixed} {
		if got := iterationInput(loc, iter, nil, fixed); !bytes.Equal(got, []byte{0xAA, 0xBB}) {
			t.Fatalf("iterationInput(%d) without counter = %x", loc, got)
		}
	}
}
