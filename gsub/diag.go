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

import "log"

// logUnsupportedLookupType records a non-fatal diagnostic for a GSUB
// lookup type this engine parses but does not evaluate (only single
// substitution, lookup type 1, is applied). Parsing continues; the
// lookup is simply left inert.
func logUnsupportedLookupType(lookupType uint16) {
	log.Printf("gsub: lookup type %d is not evaluated, treating as no-op", lookupType)
}
