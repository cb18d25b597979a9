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

// Stats summarises a parsed GsubTable: counts useful for diagnostics
// and for tests that want a legible assertion target instead of
// reaching into the table model directly.
type Stats struct {
	ScriptCount            int
	FeatureCount           int
	LookupCount            int
	SingleSubstLookupCount int
	UnsupportedLookupCount int
	CoveredGlyphCount      int
}

// Explain computes Stats for t.
func (t *GsubTable) Explain() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Stats{
		ScriptCount:  len(t.Scripts),
		FeatureCount: len(t.Features),
		LookupCount:  len(t.Lookups),
	}
	for _, l := range t.Lookups {
		if l.Type != 1 {
			s.UnsupportedLookupCount++
			continue
		}
		s.SingleSubstLookupCount++
		s.CoveredGlyphCount += len(mergedCoverageGlyphs(l))
	}
	return s
}

// mergedCoverageGlyphs collects the union of every glyph covered by
// any subtable of lookup, deduplicated and sorted ascending. It
// exists for diagnostics (Explain, cmd/gsubdump) where a lookup with
// several subtables should be reported as covering N distinct glyphs
// rather than once per subtable.
func mergedCoverageGlyphs(lookup *LookupTable) []GID {
	set := make(coverageBuilder)
	for _, sub := range lookup.Subtables {
		switch sub.Coverage.Format {
		case 1:
			for i, g := range sub.Coverage.Glyphs {
				set[g] = i
			}
		case 2:
			for _, r := range sub.Coverage.Ranges {
				for g := r.Start; g <= r.End; g++ {
					set[g] = r.StartCoverageIndex + int(g-r.Start)
				}
			}
		}
	}
	return set.glyphs()
}
