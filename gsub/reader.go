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

import "encoding/binary"

// Reader is a cursor over the raw bytes of a "GSUB" table.  It mirrors
// the absolute-seek reading style of an sfnt table parser: callers jump
// to an offset with SeekTo and then read fixed-width fields forward
// from there, with every read checked against the end of the buffer.
//
// Unlike a streaming parser, Reader holds the whole table in memory at
// once; GSUB tables are small enough (a handful of kilobytes even in
// large fonts) that buffering reads the way a multi-megabyte sfnt
// table does would only add complexity.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data, positioned at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current reading offset.
func (r *Reader) Pos() int64 {
	return int64(r.pos)
}

// Len returns the total number of bytes available.
func (r *Reader) Len() int {
	return len(r.data)
}

// SeekTo moves the cursor to an absolute offset.  It does not itself
// fail if pos is beyond the end of the data; the next read will.
func (r *Reader) SeekTo(pos int64) {
	r.pos = int(pos)
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos < 0 || n < 0 || r.pos+n > len(r.data) {
		return nil, &ShortReadError{Pos: int64(r.pos), Wanted: n}
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadInt16 reads a big-endian two's-complement int16, used for
// SingleSubstFormat1's signed deltaGlyphID field.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadTag reads a 4-byte OpenType tag, such as a script, language, or
// feature tag, verbatim (no trimming: trailing spaces are significant
// in tags like "JAN " and "en  ").
func (r *Reader) ReadTag() (Tag, error) {
	buf, err := r.take(4)
	if err != nil {
		return Tag{}, err
	}
	var t Tag
	copy(t[:], buf)
	return t, nil
}

// ReadUint16Array reads count consecutive uint16 values.
func (r *Reader) ReadUint16Array(count int) ([]uint16, error) {
	res := make([]uint16, count)
	for i := range res {
		v, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// ReadBytes reads n raw bytes.  The returned slice aliases the
// reader's backing array and must not be retained across further
// mutation of the source data.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}
