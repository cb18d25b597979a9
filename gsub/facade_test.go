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

import "testing"

type mockCMap struct {
	toGID  map[rune]GID
	toChar map[GID][]rune
}

func (m *mockCMap) GlyphFor(r rune) GID {
	if gid, ok := m.toGID[r]; ok {
		return gid
	}
	return NoGlyph
}

func (m *mockCMap) CharsFor(gid GID) []rune {
	return m.toChar[gid]
}

func TestGeneralLookupRoundTrip(t *testing.T) {
	table := mustParseMinimal(t)
	cmap := &mockCMap{
		toGID:  map[rune]GID{'A': 10},
		toChar: map[GID][]rune{10: {'A'}},
	}
	script := func(rune) UnicodeScript { return ScriptLatin }

	lookup := NewGeneralLookup(cmap, table, script, ligaSet())

	gid := lookup.GlyphFor('A')
	if gid != 15 {
		t.Fatalf("GlyphFor('A') = %d, want 15", gid)
	}

	chars, err := lookup.CharsFor(15)
	if err != nil {
		t.Fatalf("CharsFor(15): %v", err)
	}
	if len(chars) != 1 || chars[0] != 'A' {
		t.Errorf("CharsFor(15) = %v, want ['A']", chars)
	}
}

func TestGeneralLookupCharsForUnknown(t *testing.T) {
	table := mustParseMinimal(t)
	cmap := &mockCMap{}
	lookup := NewGeneralLookup(cmap, table, func(rune) UnicodeScript { return ScriptLatin }, nil)

	if _, err := lookup.CharsFor(1234); err == nil {
		t.Fatal("expected an error for a glyph with no recorded substitution")
	}
}

func TestVerticalLookupForcesLatinScript(t *testing.T) {
	table := mustParseMinimal(t)
	cmap := &mockCMap{toGID: map[rune]GID{'X': 10}}
	lookup := NewVerticalLookup(cmap, table)

	if got := lookup.GlyphFor('X'); got != 15 {
		t.Fatalf("VerticalLookup.GlyphFor('X') = %d, want 15", got)
	}
}
