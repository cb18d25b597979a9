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

// Parse decodes a "GSUB" table from data, where data starts at the
// table's first byte (offset 0 == the table header, not the file
// header).  Every offset field inside the table is relative to the
// start of whichever structure declares it, per the OpenType
// specification; Parse resolves each to an index into data before
// following it.
func Parse(data []byte) (*GsubTable, error) {
	r := NewReader(data)

	majorVersion, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	minorVersion, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	if majorVersion != 1 || (minorVersion != 0 && minorVersion != 1) {
		return nil, &UnsupportedFormatError{SubSystem: "gsub", Feature: "table version"}
	}

	scriptListOffset, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	featureListOffset, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	lookupListOffset, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	if minorVersion == 1 {
		// featureVariationsOffset: read past, never evaluated. This is
		// the hook a future variable-font implementation would need.
		if _, err := r.ReadUint32(); err != nil {
			return nil, err
		}
	}

	scripts, err := parseScriptList(data, int(scriptListOffset))
	if err != nil {
		return nil, err
	}
	features, err := parseFeatureList(data, int(featureListOffset))
	if err != nil {
		return nil, err
	}
	lookups, err := parseLookupList(data, int(lookupListOffset))
	if err != nil {
		return nil, err
	}

	return &GsubTable{
		Scripts:  scripts,
		Features: features,
		Lookups:  lookups,
		forward:  make(map[GID]GID),
		reverse:  make(map[GID]GID),
	}, nil
}

// parseScriptList reads the ScriptList at base, a two-pass read: the
// fixed-width (tag, offset) records first, then each record's
// ScriptTable, so that every sibling offset is already known before
// any descent.
func parseScriptList(data []byte, base int) ([]ScriptRecord, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	type rawRecord struct {
		tag    Tag
		offset uint16
	}
	raw := make([]rawRecord, count)
	for i := range raw {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		offset, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		raw[i] = rawRecord{tag, offset}
	}

	records := make([]ScriptRecord, count)
	for i, rr := range raw {
		table, err := parseScriptTable(data, base+int(rr.offset))
		if err != nil {
			return nil, err
		}
		records[i] = ScriptRecord{Tag: rr.tag, Table: table}
	}
	return records, nil
}

func parseScriptTable(data []byte, base int) (ScriptTable, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	defaultLangSysOffset, err := r.ReadUint16()
	if err != nil {
		return ScriptTable{}, err
	}
	langSysCount, err := r.ReadUint16()
	if err != nil {
		return ScriptTable{}, err
	}

	type rawRecord struct {
		tag    Tag
		offset uint16
	}
	raw := make([]rawRecord, langSysCount)
	for i := range raw {
		tag, err := r.ReadTag()
		if err != nil {
			return ScriptTable{}, err
		}
		offset, err := r.ReadUint16()
		if err != nil {
			return ScriptTable{}, err
		}
		raw[i] = rawRecord{tag, offset}
	}

	var st ScriptTable
	if defaultLangSysOffset != 0 {
		table, err := parseLangSysTable(data, base+int(defaultLangSysOffset))
		if err != nil {
			return ScriptTable{}, err
		}
		st.HasDefaultLangSys = true
		st.DefaultLangSys = table
	}

	st.LangSysRecords = make([]LangSysRecord, langSysCount)
	for i, rr := range raw {
		table, err := parseLangSysTable(data, base+int(rr.offset))
		if err != nil {
			return ScriptTable{}, err
		}
		st.LangSysRecords[i] = LangSysRecord{Tag: rr.tag, Table: table}
	}
	return st, nil
}

func parseLangSysTable(data []byte, base int) (LangSysTable, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	// lookupOrderOffset: reserved, always 0 in the current spec.
	if _, err := r.ReadUint16(); err != nil {
		return LangSysTable{}, err
	}
	requiredFeatureIndex, err := r.ReadUint16()
	if err != nil {
		return LangSysTable{}, err
	}
	featureIndexCount, err := r.ReadUint16()
	if err != nil {
		return LangSysTable{}, err
	}
	indices, err := r.ReadUint16Array(int(featureIndexCount))
	if err != nil {
		return LangSysTable{}, err
	}
	return LangSysTable{RequiredFeatureIndex: requiredFeatureIndex, FeatureIndices: indices}, nil
}

func parseFeatureList(data []byte, base int) ([]FeatureRecord, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	type rawRecord struct {
		tag    Tag
		offset uint16
	}
	raw := make([]rawRecord, count)
	for i := range raw {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		offset, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		raw[i] = rawRecord{tag, offset}
	}

	records := make([]FeatureRecord, count)
	for i, rr := range raw {
		table, err := parseFeatureTable(data, base+int(rr.offset))
		if err != nil {
			return nil, err
		}
		records[i] = FeatureRecord{Tag: rr.tag, Table: table}
	}
	return records, nil
}

func parseFeatureTable(data []byte, base int) (FeatureTable, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	// featureParamsOffset: ignored, no GSUB feature in scope uses it.
	if _, err := r.ReadUint16(); err != nil {
		return FeatureTable{}, err
	}
	lookupIndexCount, err := r.ReadUint16()
	if err != nil {
		return FeatureTable{}, err
	}
	indices, err := r.ReadUint16Array(int(lookupIndexCount))
	if err != nil {
		return FeatureTable{}, err
	}
	return FeatureTable{LookupListIndices: indices}, nil
}

func parseLookupList(data []byte, base int) ([]*LookupTable, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	offsets, err := r.ReadUint16Array(int(count))
	if err != nil {
		return nil, err
	}

	lookups := make([]*LookupTable, count)
	for i, off := range offsets {
		lookup, err := parseLookupTable(data, base+int(off))
		if err != nil {
			return nil, err
		}
		lookups[i] = lookup
	}
	return lookups, nil
}

func parseLookupTable(data []byte, base int) (*LookupTable, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	lookupType, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	lookupFlag, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	subTableCount, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	subtableOffsets, err := r.ReadUint16Array(int(subTableCount))
	if err != nil {
		return nil, err
	}

	lookup := &LookupTable{Type: lookupType, Flag: lookupFlag}

	if lookupFlag&0x0010 != 0 {
		markFilteringSet, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		lookup.MarkFilteringSet = markFilteringSet
	}

	if lookupType != 1 {
		// Lookup types other than single substitution are parsed past
		// but never evaluated; leave Subtables nil.
		logUnsupportedLookupType(lookupType)
		return lookup, nil
	}

	lookup.Subtables = make([]SingleSubst, subTableCount)
	for i, off := range subtableOffsets {
		st, err := parseSingleSubst(data, base+int(off))
		if err != nil {
			return nil, err
		}
		lookup.Subtables[i] = st
	}
	return lookup, nil
}

func parseSingleSubst(data []byte, base int) (SingleSubst, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	format, err := r.ReadUint16()
	if err != nil {
		return SingleSubst{}, err
	}

	coverageOffset, err := r.ReadUint16()
	if err != nil {
		return SingleSubst{}, err
	}

	switch format {
	case 1:
		delta, err := r.ReadInt16()
		if err != nil {
			return SingleSubst{}, err
		}
		cov, err := parseCoverage(data, base+int(coverageOffset))
		if err != nil {
			return SingleSubst{}, err
		}
		return SingleSubst{Format: 1, Coverage: cov, Delta: delta}, nil

	case 2:
		glyphCount, err := r.ReadUint16()
		if err != nil {
			return SingleSubst{}, err
		}
		raw, err := r.ReadUint16Array(int(glyphCount))
		if err != nil {
			return SingleSubst{}, err
		}
		substitutes := make([]GID, len(raw))
		for i, v := range raw {
			substitutes[i] = GID(v)
		}
		cov, err := parseCoverage(data, base+int(coverageOffset))
		if err != nil {
			return SingleSubst{}, err
		}
		return SingleSubst{Format: 2, Coverage: cov, Substitutes: substitutes}, nil

	default:
		return SingleSubst{}, &CorruptTableError{
			SubSystem: "gsub/singlesubst",
			Reason:    "unknown substFormat",
		}
	}
}

func parseCoverage(data []byte, base int) (Coverage, error) {
	r := NewReader(data)
	r.SeekTo(int64(base))

	format, err := r.ReadUint16()
	if err != nil {
		return Coverage{}, err
	}

	switch format {
	case 1:
		glyphCount, err := r.ReadUint16()
		if err != nil {
			return Coverage{}, err
		}
		glyphs := make([]GID, glyphCount)
		prev := -1
		for i := range glyphs {
			gid, err := r.ReadUint16()
			if err != nil {
				return Coverage{}, err
			}
			if int(gid) <= prev {
				return Coverage{}, &CorruptTableError{
					SubSystem: "gsub/coverage",
					Reason:    "format 1 glyph array is not strictly ascending",
				}
			}
			glyphs[i] = GID(gid)
			prev = int(gid)
		}
		return Coverage{Format: 1, Glyphs: glyphs}, nil

	case 2:
		rangeCount, err := r.ReadUint16()
		if err != nil {
			return Coverage{}, err
		}
		ranges := make([]CoverageRange, rangeCount)
		prevEnd := -1
		for i := range ranges {
			startGID, err := r.ReadUint16()
			if err != nil {
				return Coverage{}, err
			}
			endGID, err := r.ReadUint16()
			if err != nil {
				return Coverage{}, err
			}
			startCoverageIndex, err := r.ReadUint16()
			if err != nil {
				return Coverage{}, err
			}
			if int(endGID) < int(startGID) || int(startGID) <= prevEnd {
				return Coverage{}, &CorruptTableError{
					SubSystem: "gsub/coverage",
					Reason:    "format 2 ranges are not well-ordered",
				}
			}
			ranges[i] = CoverageRange{
				Start:              GID(startGID),
				End:                GID(endGID),
				StartCoverageIndex: int(startCoverageIndex),
			}
			prevEnd = int(endGID)
		}
		return Coverage{Format: 2, Ranges: ranges}, nil

	default:
		return Coverage{}, &CorruptTableError{
			SubSystem: "gsub/coverage",
			Reason:    "unknown coverage format",
		}
	}
}
