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

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Coverage is an OpenType Coverage table.  Format 1 stores a sorted
// glyph array searched by binary search; format 2 stores a sequence
// of (start, end, startCoverageIndex) ranges searched linearly.  As
// with SingleSubst, this is a tagged variant rather than an
// interface, so Index has a single exhaustive switch instead of two
// implementations of a shared method.
type Coverage struct {
	Format uint8 // 1 or 2

	Glyphs []GID           // sorted ascending, valid when Format == 1
	Ranges []CoverageRange // valid when Format == 2
}

// CoverageRange is one Format 2 coverage range.
type CoverageRange struct {
	Start, End         GID
	StartCoverageIndex int
}

// Index returns the coverage index of gid, or a negative number if
// gid is not covered.
func (c Coverage) Index(gid GID) int {
	switch c.Format {
	case 1:
		glyphs := c.Glyphs
		lo, hi := 0, len(glyphs)
		for lo < hi {
			mid := (lo + hi) / 2
			if glyphs[mid] < gid {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < len(glyphs) && glyphs[lo] == gid {
			return lo
		}
		return -1
	case 2:
		for _, r := range c.Ranges {
			if gid >= r.Start && gid <= r.End {
				return r.StartCoverageIndex + int(gid-r.Start)
			}
		}
		return -1
	default:
		return -1
	}
}

// coverageBuilder accumulates gid -> coverage index associations,
// used to merge the coverage of several subtables into one sorted,
// deduplicated glyph list for diagnostics. It mirrors the role of
// sfnt's coverage.Table map, trimmed to the read path gsub needs.
type coverageBuilder map[GID]int

func (b coverageBuilder) glyphs() []GID {
	gids := maps.Keys(b)
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })
	return gids
}
