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

// GID identifies a glyph within a font.  Glyph IDs on disk are 16-bit
// unsigned values; GID is kept signed so that NoGlyph can represent
// "no glyph" / "unmapped character" without reserving a real glyph
// index for it.
type GID int32

// NoGlyph is the sentinel GID meaning "unmapped".  A cmap collaborator
// returns NoGlyph for codepoints it does not map, and Substitute
// preserves it unchanged.
const NoGlyph GID = -1
