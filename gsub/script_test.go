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

func newTableWithScripts(tags ...string) *GsubTable {
	t := &GsubTable{forward: make(map[GID]GID), reverse: make(map[GID]GID)}
	for _, tag := range tags {
		t.Scripts = append(t.Scripts, ScriptRecord{Tag: mkTag(tag)})
	}
	return t
}

func TestResolveScriptDirectMatch(t *testing.T) {
	table := newTableWithScripts("arab", "latn")
	got := table.resolveScript(ScriptArabic)
	if got != mkTag("arab") {
		t.Errorf("resolveScript(Arabic) = %q, want arab", got)
	}
	if !table.haveHint || table.lastUsedSupportedScript != mkTag("arab") {
		t.Errorf("hint not updated to arab: %+v", table.lastUsedSupportedScript)
	}
}

func TestResolveScriptNewestCandidateWins(t *testing.T) {
	table := newTableWithScripts("bng2", "beng")
	got := table.resolveScript(ScriptBengali)
	if got != mkTag("bng2") {
		t.Errorf("resolveScript(Bengali) = %q, want bng2 (newest first)", got)
	}
}

func TestResolveScriptNoCandidateDeclaredNoHintUpdate(t *testing.T) {
	table := newTableWithScripts("latn")
	got := table.resolveScript(ScriptArabic)
	if got != mkTag("arab") {
		t.Errorf("resolveScript(Arabic) = %q, want arab (newest candidate, undeclared)", got)
	}
	if table.haveHint {
		t.Error("hint must not be updated when no candidate is declared")
	}
}

func TestResolveScriptInheritedUsesHintOrFirstScript(t *testing.T) {
	table := newTableWithScripts("latn", "arab")

	got := table.resolveScript(ScriptInherited)
	if got != mkTag("latn") {
		t.Errorf("resolveScript(Inherited) with no hint = %q, want first declared script latn", got)
	}

	table.resolveScript(ScriptArabic) // updates the hint to arab
	got2 := table.resolveScript(ScriptInherited)
	if got2 != mkTag("arab") {
		t.Errorf("resolveScript(Inherited) after hint update = %q, want arab", got2)
	}
}

func TestResolveScriptCommonFallsBackWhenDFLTAbsent(t *testing.T) {
	table := newTableWithScripts("latn")
	got := table.resolveScript(ScriptCommon)
	if got != mkTag("latn") {
		t.Errorf("resolveScript(Common) without DFLT = %q, want first declared script latn", got)
	}
}

func TestResolveScriptCommonUsesDFLTWhenPresent(t *testing.T) {
	table := newTableWithScripts("DFLT", "latn")
	got := table.resolveScript(ScriptCommon)
	if got != mkTag("DFLT") {
		t.Errorf("resolveScript(Common) with DFLT declared = %q, want DFLT", got)
	}
}
