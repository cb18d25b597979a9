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

// Package gsub reads and evaluates the "GSUB" (Glyph Substitution) table
// of an OpenType/TrueType font.
//
// A GsubTable is parsed once per font (see Parse) and then queried many
// times via Substitute and Unsubstitute.  Only lookup type 1 (single
// substitution) is evaluated; contextual, chaining, ligature and
// alternate lookups are parsed but never fire.  Two facades in
// facade.go adapt a GsubTable, together with a cmap, to the shape a
// text layout engine actually wants to call: GeneralLookup for
// feature-driven substitution, and VerticalLookup for vertical CJK
// typesetting.
package gsub
