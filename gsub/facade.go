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

// CMap is the character-to-glyph map a host font provides. GlyphFor
// must return NoGlyph for codepoints it does not map; CharsFor
// returns the codepoints that encode to gid, in no particular
// guaranteed order beyond being stable for a given font.
type CMap interface {
	GlyphFor(codepoint rune) GID
	CharsFor(gid GID) []rune
}

// ScriptClassifier reports the Unicode Script property of a
// codepoint, matching the UnicodeScript enumeration.
type ScriptClassifier func(codepoint rune) UnicodeScript

// GeneralLookup is the feature-driven substitution facade: it
// combines a CMap, a GsubTable, a ScriptClassifier, and a set of
// enabled feature tags into the single call a layout engine actually
// wants to make. It is a read-only view: it owns neither the CMap nor
// the GsubTable.
type GeneralLookup struct {
	cmap     CMap
	gsub     *GsubTable
	script   ScriptClassifier
	features map[Tag]bool // nil means "all features enabled"
}

// NewGeneralLookup constructs a GeneralLookup. features may be nil to
// mean "all features enabled".
func NewGeneralLookup(cmap CMap, gsub *GsubTable, script ScriptClassifier, features map[Tag]bool) *GeneralLookup {
	return &GeneralLookup{cmap: cmap, gsub: gsub, script: script, features: features}
}

// GlyphFor returns the (possibly substituted) glyph for a character.
func (g *GeneralLookup) GlyphFor(char rune) GID {
	gid := g.cmap.GlyphFor(char)
	return g.gsub.Substitute(gid, g.script(char), g.features)
}

// CharsFor returns the characters that produce the substituted glyph
// gid, by inverting the substitution and then consulting the cmap.
func (g *GeneralLookup) CharsFor(gid GID) ([]rune, error) {
	orig, err := g.gsub.Unsubstitute(gid)
	if err != nil {
		return nil, err
	}
	return g.cmap.CharsFor(orig), nil
}

// VerticalLookup is the vertical-writing substitution facade. It
// passes a fixed script and a nil (unfiltered) feature set, so every
// feature of that script's language systems is enabled, vertical
// features such as vert and vrt2 included. As with any Substitute
// call, only the first type-1 lookup in the resulting list is
// applied. It is a read-only view: it owns neither the CMap nor the
// GsubTable.
type VerticalLookup struct {
	cmap CMap
	gsub *GsubTable
}

// NewVerticalLookup constructs a VerticalLookup.
func NewVerticalLookup(cmap CMap, gsub *GsubTable) *VerticalLookup {
	return &VerticalLookup{cmap: cmap, gsub: gsub}
}

// verticalScript is the hard-coded script used for every vertical
// lookup. The OpenType spec would normally call for a script matching
// the text being shaped, but vertical typesetting in practice is
// overwhelmingly Latin-script UI chrome around CJK glyphs, and the
// vertical features themselves (vert, vrt2) don't vary by script.
//
// TODO: accept the actual script as a parameter instead of hard-coding latn.
const verticalScript = ScriptLatin

// GlyphFor returns the vertical-substituted glyph for a character.
func (v *VerticalLookup) GlyphFor(char rune) GID {
	gid := v.cmap.GlyphFor(char)
	return v.gsub.Substitute(gid, verticalScript, nil)
}

// CharsFor returns the characters that produce the vertically
// substituted glyph gid.
func (v *VerticalLookup) CharsFor(gid GID) ([]rune, error) {
	orig, err := v.gsub.Unsubstitute(gid)
	if err != nil {
		return nil, err
	}
	return v.cmap.CharsFor(orig), nil
}
