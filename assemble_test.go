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

func TestAssembleFullBytes(t *testing.T) {
	blocks := [][]byte{{0x01, 0x02}, {0x03, 0x04}}
	got, err := assemble(blocks, 24, 2)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("assemble = %x", got)
	}
}

func TestAssemblePartialByte(t *testing.T) {
	blocks := [][]byte{{0xFF, 0xFF}}
	got, err := assemble(blocks, 12, 2)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0xF0}) {
		t.Fatalf("assemble = %x, expected fff0", got)
	}
}

func TestAssembleSingleTrailingBit(t *testing.T) {
	blocks := [][]byte{{0xFF}}
	got, err := assemble(blocks, 1, 1)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("assemble = %x, expected 80", got)
	}
}

func TestAssembleWrongBlockSize(t *testing.T) {
	blocks := [][]byte{{0x01, 0x02}, {0x03}}
	if _, err := assemble(blocks, 24, 2); err != ErrCorruptState {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}

func TestAssembleInsufficientOutput(t *testing.T) {
	blocks := [][]byte{{0x01, 0x02}}
	if _, err := assemble(blocks, 24, 2); err != ErrInsufficientOutput {
		t.Fatalf("expected ErrInsufficientOutput, got %v", err)
	}
}
