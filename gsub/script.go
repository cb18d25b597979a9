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

// UnicodeScript identifies a run of text by its Unicode Script
// property, as reported by the host's script classifier collaborator.
// It is a closed enumeration of the writing systems this engine
// has a script-tag mapping for, plus the three special values every
// classifier must be able to report.
type UnicodeScript int

const (
	ScriptUnknown UnicodeScript = iota
	ScriptCommon
	ScriptInherited

	ScriptLatin
	ScriptGreek
	ScriptCyrillic
	ScriptArabic
	ScriptHebrew
	ScriptDevanagari
	ScriptBengali
	ScriptThai
	ScriptHan
	ScriptHiragana
	ScriptKatakana
	ScriptHangul
)

// inherited is the sentinel candidate tag meaning "use the hint,
// there is no tag of its own".
const inherited = "<inherited>"

// dfltTag is the fallback script tag for scripts with no mapping.
var dfltTag = Tag{'D', 'F', 'L', 'T'}

func mkTag(s string) Tag {
	var t Tag
	copy(t[:], s)
	for i := len(s); i < 4; i++ {
		t[i] = ' '
	}
	return t
}

// scriptCandidates maps a UnicodeScript to its ordered list of
// candidate OpenType script tags, newest revision first. An absent
// entry behaves like the ScriptCommon row: a single DFLT candidate.
var scriptCandidates = map[UnicodeScript][]string{
	ScriptUnknown:    {"DFLT"},
	ScriptCommon:     {"DFLT"},
	ScriptInherited:  {inherited},
	ScriptLatin:      {"latn"},
	ScriptGreek:      {"grek"},
	ScriptCyrillic:   {"cyrl"},
	ScriptArabic:     {"arab"},
	ScriptHebrew:     {"hebr"},
	ScriptDevanagari: {"dev2", "deva"},
	ScriptBengali:    {"bng2", "beng"},
	ScriptThai:       {"thai"},
	ScriptHan:        {"hani"},
	// Both HIRAGANA and KATAKANA map to "kana", per OpenType; newer
	// "hira" tags exist but are intentionally not represented.
	ScriptHiragana: {"kana"},
	ScriptKatakana: {"kana"},
	ScriptHangul:   {"hang"},
}

// resolveScript maps script to an ordered list of candidate OpenType
// script tags and picks the one this GsubTable declares, updating
// or consulting the table's last-used-script hint as needed. Callers
// must hold t.mu.
func (t *GsubTable) resolveScript(script UnicodeScript) Tag {
	candidates, ok := scriptCandidates[script]
	if !ok {
		candidates = []string{"DFLT"}
	}

	useHint := false
	if len(candidates) == 1 {
		if candidates[0] == inherited {
			useHint = true
		} else if candidates[0] == "DFLT" && !t.declares(dfltTag) {
			useHint = true
		}
	}

	if useHint {
		if t.haveHint {
			return t.lastUsedSupportedScript
		}
		if len(t.Scripts) == 0 {
			return dfltTag
		}
		first := t.Scripts[0].Tag
		t.lastUsedSupportedScript = first
		t.haveHint = true
		return first
	}

	for _, c := range candidates {
		tag := mkTag(c)
		if t.declares(tag) {
			t.lastUsedSupportedScript = tag
			t.haveHint = true
			return tag
		}
	}

	// None of the candidates is declared: return the newest candidate
	// without touching the hint.
	return mkTag(candidates[0])
}

func (t *GsubTable) declares(tag Tag) bool {
	for _, s := range t.Scripts {
		if s.Tag == tag {
			return true
		}
	}
	return false
}
