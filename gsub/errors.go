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

import "fmt"

// ShortReadError is returned when the underlying reader runs out of
// data before a fixed-size field has been fully read.
type ShortReadError struct {
	Pos    int64
	Wanted int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("gsub: short read at offset %d (wanted %d bytes)", e.Pos, e.Wanted)
}

// CorruptTableError reports that a GSUB table (or one of its
// subtables) violates an invariant of the binary format, as opposed
// to simply running out of bytes.
type CorruptTableError struct {
	SubSystem string
	Reason    string
}

func (e *CorruptTableError) Error() string {
	return fmt.Sprintf("gsub: corrupt %s table: %s", e.SubSystem, e.Reason)
}

// UnsupportedFormatError reports a structurally valid but unimplemented
// format; Parse returns it for a GSUB table version other than 1.0 or
// 1.1.  Unknown coverage and subtable formats are reported as
// CorruptTableError instead.
type UnsupportedFormatError struct {
	SubSystem string
	Feature   string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("gsub: %s: unsupported %s", e.SubSystem, e.Feature)
}

// UnknownReverseMappingError is returned by Unsubstitute when asked
// about a glyph ID that no earlier call to Substitute has produced
// through a coverage hit, so no reverse mapping has been recorded.
type UnknownReverseMappingError struct {
	GID GID
}

func (e *UnknownReverseMappingError) Error() string {
	return fmt.Sprintf("gsub: glyph %d has no known reverse mapping", int32(e.GID))
}
