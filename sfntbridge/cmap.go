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

// Package sfntbridge adapts the real seehuhn.de/go/sfnt font-loading
// stack to the narrow collaborator interfaces gsub.GeneralLookup and
// gsub.VerticalLookup expect, so the facades can be exercised against
// an actual parsed font instead of only a mock.
package sfntbridge

import (
	"sort"

	"seehuhn.de/go/gsub/gsub"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// CMap adapts a decoded sfnt cmap.Subtable to gsub.CMap.
//
// cmap.Subtable.Lookup returns glyph 0 (".notdef") for an unmapped
// rune, but gsub's contract requires the sentinel -1 there, so CMap
// translates 0 to gsub.NoGlyph. This also means glyph 0 itself can
// never be named by CharsFor; that loss is inherent in sfnt's cmap
// API and is not something gsub can recover.
type CMap struct {
	sub cmap.Subtable

	// reverse is built lazily from CodeRange on first use, since
	// cmap.Subtable exposes no reverse lookup of its own.
	reverse     map[glyph.ID][]rune
	reverseDone bool
}

// NewCMap wraps a decoded cmap subtable.
func NewCMap(sub cmap.Subtable) *CMap {
	return &CMap{sub: sub}
}

// GlyphFor implements gsub.CMap.
func (c *CMap) GlyphFor(r rune) gsub.GID {
	gid := c.sub.Lookup(r)
	if gid == 0 {
		return gsub.NoGlyph
	}
	return gsub.GID(gid)
}

// CharsFor implements gsub.CMap.
func (c *CMap) CharsFor(gid gsub.GID) []rune {
	c.ensureReverse()
	if gid < 0 {
		return nil
	}
	return c.reverse[glyph.ID(gid)]
}

func (c *CMap) ensureReverse() {
	if c.reverseDone {
		return
	}
	c.reverseDone = true
	c.reverse = make(map[glyph.ID][]rune)

	low, high := c.sub.CodeRange()
	for r := low; r <= high; r++ {
		gid := c.sub.Lookup(r)
		if gid == 0 {
			continue
		}
		c.reverse[gid] = append(c.reverse[gid], r)
	}
	for _, rs := range c.reverse {
		sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	}
}
