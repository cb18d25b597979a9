// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gsub

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderFixedWidth(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x03, 'l', 'a', 't', 'n'}
	r := NewReader(data)

	u8, err := r.ReadUint8()
	if err != nil || u8 != 0 {
		t.Fatalf("ReadUint8: got (%d, %v)", u8, err)
	}

	u16, err := r.ReadUint16()
	if err != nil || u16 != 1 {
		t.Fatalf("ReadUint16: got (%d, %v)", u16, err)
	}

	u16b, err := r.ReadUint16()
	if err != nil || u16b != 2 {
		t.Fatalf("ReadUint16: got (%d, %v)", u16b, err)
	}

	u32, err := r.ReadUint32()
	if err != nil || u32 != 3 {
		t.Fatalf("ReadUint32: got (%d, %v)", u32, err)
	}

	tag, err := r.ReadTag()
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if diff := cmp.Diff("latn", tag.String()); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x00})
	if _, err := r.ReadUint16(); err == nil {
		t.Fatal("expected a short-read error, got nil")
	}
}

func TestReaderSeekTo(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0x00, 0x01}
	r := NewReader(data)
	r.SeekTo(2)
	v, err := r.ReadUint16()
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("got %d, want 1", v)
	}
}

func TestReaderUint16Array(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}
	r := NewReader(data)
	got, err := r.ReadUint16Array(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
}
