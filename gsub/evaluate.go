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

// Substitute maps gid to its substituted form for the given script
// and set of enabled feature tags. enabledFeatures == nil means
// "every feature is enabled"; an empty, non-nil set enables none, but
// required features still apply.
//
// The first GID ever substituted wins: once a result has been cached
// for gid, every later call returns that cached result regardless of
// the script and features supplied, because downstream text
// extraction depends on a one-to-one mapping.
func (t *GsubTable) Substitute(gid GID, script UnicodeScript, enabledFeatures map[Tag]bool) GID {
	if gid == NoGlyph {
		return NoGlyph
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if result, ok := t.forward[gid]; ok {
		return result
	}

	scriptTag := t.resolveScript(script)
	langSystems := t.langSystemsFor(scriptTag)
	if len(langSystems) == 0 {
		return gid
	}

	lookupIndices := t.buildLookupList(langSystems, enabledFeatures)

	for _, li := range lookupIndices {
		if int(li) >= len(t.Lookups) {
			continue
		}
		lookup := t.Lookups[li]
		if lookup.Type != 1 {
			continue
		}
		result, ok := doLookup(lookup, gid)
		if ok {
			t.forward[gid] = result
			t.reverse[result] = gid
		}
		return result
	}
	return gid
}

// Unsubstitute recovers the GID that Substitute originally produced
// sgid from. It fails with UnknownReverseMappingError if sgid was
// never actually produced by a call to Substitute; no speculative
// inversion is attempted.
func (t *GsubTable) Unsubstitute(sgid GID) (GID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gid, ok := t.reverse[sgid]
	if !ok {
		return 0, &UnknownReverseMappingError{GID: sgid}
	}
	return gid, nil
}

// langSystemsFor gathers every LangSysTable belonging to a
// ScriptRecord whose tag matches scriptTag: the script's default
// language system, if present, plus every explicit language-system
// record.
func (t *GsubTable) langSystemsFor(scriptTag Tag) []LangSysTable {
	var out []LangSysTable
	for _, s := range t.Scripts {
		if s.Tag != scriptTag {
			continue
		}
		if s.Table.HasDefaultLangSys {
			out = append(out, s.Table.DefaultLangSys)
		}
		for _, lr := range s.Table.LangSysRecords {
			out = append(out, lr.Table)
		}
	}
	return out
}

// buildLookupList builds the flattened, ordered lookup index list:
// for every LangSysTable, the required feature (if any)
// unconditionally, then every feature whose tag is enabled.
// Out-of-range feature indices are silently skipped rather than
// treated as parse errors, since a shaping-time lookup of a malformed
// index must degrade gracefully instead of panicking.  Lookup indices
// are copied as they are; Substitute skips the out-of-range ones.
func (t *GsubTable) buildLookupList(langSystems []LangSysTable, enabledFeatures map[Tag]bool) []uint16 {
	var lookupIndices []uint16

	addFeature := func(featureIndex uint16) {
		if int(featureIndex) >= len(t.Features) {
			return
		}
		lookupIndices = append(lookupIndices, t.Features[featureIndex].Table.LookupListIndices...)
	}

	for _, ls := range langSystems {
		if ls.RequiredFeatureIndex != noRequiredFeature {
			addFeature(ls.RequiredFeatureIndex)
		}
		for _, fi := range ls.FeatureIndices {
			if int(fi) >= len(t.Features) {
				continue
			}
			tag := t.Features[fi].Tag
			if enabledFeatures == nil || enabledFeatures[tag] {
				addFeature(fi)
			}
		}
	}
	return lookupIndices
}

// doLookup applies the first subtable of lookup that covers gid, in
// declaration order. It reports ok == false, leaving gid unchanged,
// when no subtable covers gid at all.
func doLookup(lookup *LookupTable, gid GID) (GID, bool) {
	for _, sub := range lookup.Subtables {
		idx := sub.Coverage.Index(gid)
		if idx < 0 {
			continue
		}
		switch sub.Format {
		case 1:
			return GID(uint16(int32(gid) + int32(sub.Delta))), true
		case 2:
			if idx < len(sub.Substitutes) {
				return sub.Substitutes[idx], true
			}
			return gid, true
		}
	}
	return gid, false
}
