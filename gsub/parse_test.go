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

// minimalGsub is the basic single-substitution font shared by the parser's test
// matrix: one "latn" script, one default langsys with no required
// feature and one optional feature "liga", which activates a single
// lookup of type 1 format 1 (delta +5) covering glyph 10.
//
// Byte layout (offsets are absolute, matching the field comments):
//
//	 0: header                 majorVersion=1 minorVersion=0
//	                           scriptListOffset=10 featureListOffset=30 lookupListOffset=44
//	10: ScriptList             count=1
//	12:   ScriptRecord         tag="latn" offset=8 (-> 18)
//	18:   ScriptTable          defaultLangSysOffset=4 (-> 22) langSysCount=0
//	22:   LangSysTable         lookupOrder=0 requiredFeatureIndex=0xFFFF featureIndexCount=1 [0]
//	30: FeatureList            count=1
//	32:   FeatureRecord        tag="liga" offset=8 (-> 38)
//	38:   FeatureTable         featureParams=0 lookupIndexCount=1 [0]
//	44: LookupList             count=1
//	46:   offset=4 (-> 48)
//	48:   LookupTable          type=1 flag=0 subTableCount=1 offset=8 (-> 56)
//	56:   SingleSubst1         format=1 coverageOffset=6 (-> 62) delta=5
//	62:   Coverage1            format=1 glyphCount=1 [10]
func minimalGsub() []byte {
	return []byte{
		0x00, 0x01, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x1E, 0x00, 0x2C, // header
		0x00, 0x01, // ScriptList.count
		'l', 'a', 't', 'n', 0x00, 0x08, // ScriptRecord
		0x00, 0x04, 0x00, 0x00, // ScriptTable
		0x00, 0x00, 0xFF, 0xFF, 0x00, 0x01, 0x00, 0x00, // default LangSysTable
		0x00, 0x01, // FeatureList.count
		'l', 'i', 'g', 'a', 0x00, 0x08, // FeatureRecord
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, // FeatureTable
		0x00, 0x01, // LookupList.count
		0x00, 0x04, // lookup offset
		0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x08, // LookupTable
		0x00, 0x01, 0x00, 0x06, 0x00, 0x05, // SingleSubst format 1
		0x00, 0x01, 0x00, 0x01, 0x00, 0x0A, // Coverage format 1
	}
}

func TestParseMinimalGsub(t *testing.T) {
	data := minimalGsub()
	if len(data) != 68 {
		t.Fatalf("fixture length = %d, want 68", len(data))
	}

	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(table.Scripts) != 1 || table.Scripts[0].Tag != mkTag("latn") {
		t.Fatalf("unexpected scripts: %+v", table.Scripts)
	}
	st := table.Scripts[0].Table
	if !st.HasDefaultLangSys {
		t.Fatal("expected a default LangSys")
	}
	if st.DefaultLangSys.RequiredFeatureIndex != noRequiredFeature {
		t.Errorf("RequiredFeatureIndex = %#x, want 0xFFFF", st.DefaultLangSys.RequiredFeatureIndex)
	}
	if got := st.DefaultLangSys.FeatureIndices; len(got) != 1 || got[0] != 0 {
		t.Errorf("FeatureIndices = %v, want [0]", got)
	}

	if len(table.Features) != 1 || table.Features[0].Tag != mkTag("liga") {
		t.Fatalf("unexpected features: %+v", table.Features)
	}
	if got := table.Features[0].Table.LookupListIndices; len(got) != 1 || got[0] != 0 {
		t.Errorf("LookupListIndices = %v, want [0]", got)
	}

	if len(table.Lookups) != 1 {
		t.Fatalf("unexpected lookups: %+v", table.Lookups)
	}
	lookup := table.Lookups[0]
	if lookup.Type != 1 || len(lookup.Subtables) != 1 {
		t.Fatalf("unexpected lookup: %+v", lookup)
	}
	sub := lookup.Subtables[0]
	if sub.Format != 1 || sub.Delta != 5 {
		t.Fatalf("unexpected subtable: %+v", sub)
	}
	if sub.Coverage.Format != 1 {
		t.Fatalf("unexpected coverage format: %d", sub.Coverage.Format)
	}
	if got := sub.Coverage.Glyphs; len(got) != 1 || got[0] != 10 {
		t.Errorf("Coverage.Glyphs = %v, want [10]", got)
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	data := append([]byte{0x00, 0x02}, minimalGsub()[2:]...)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected an error for an unsupported table version")
	}
}

func TestParseShortHeader(t *testing.T) {
	if _, err := Parse([]byte{0x00, 0x01, 0x00, 0x00}); err == nil {
		t.Fatal("expected a short-read error")
	}
}
