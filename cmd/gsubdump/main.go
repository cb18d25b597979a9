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

// Command gsubdump reads a file holding a bare GSUB table (not a whole
// font) and prints a summary of the scripts, features, and lookups it
// declares. It exists purely as
// a diagnostic tool exercising gsub.Parse and gsub.Explain against
// real font data, in the spirit of the teacher's own demo/example
// binaries under examples/ and demo/.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/gsub/gsub"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s gsub-table-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("gsubdump: %v", err)
	}

	table, err := gsub.Parse(data)
	if err != nil {
		log.Fatalf("gsubdump: %v", err)
	}

	verbose := term.IsTerminal(int(os.Stdout.Fd()))
	printSummary(os.Stdout, table, verbose)
}

func printSummary(w io.Writer, table *gsub.GsubTable, verbose bool) {
	stats := table.Explain()

	if !verbose {
		fmt.Fprintf(w, "scripts=%d features=%d lookups=%d (single-subst=%d unsupported=%d) covered-glyphs=%d\n",
			stats.ScriptCount, stats.FeatureCount, stats.LookupCount,
			stats.SingleSubstLookupCount, stats.UnsupportedLookupCount, stats.CoveredGlyphCount)
		return
	}

	fmt.Fprintf(w, "GSUB table\n")
	fmt.Fprintf(w, "  scripts:   %d\n", stats.ScriptCount)
	fmt.Fprintf(w, "  features:  %d\n", stats.FeatureCount)
	fmt.Fprintf(w, "  lookups:   %d (%d single-substitution, %d unsupported)\n",
		stats.LookupCount, stats.SingleSubstLookupCount, stats.UnsupportedLookupCount)
	fmt.Fprintf(w, "  covered glyphs across single-substitution lookups: %d\n", stats.CoveredGlyphCount)

	for _, s := range table.Scripts {
		fmt.Fprintf(w, "  script %q: default=%v explicit-langsys=%d\n",
			s.Tag.String(), s.Table.HasDefaultLangSys, len(s.Table.LangSysRecords))
	}
	for _, f := range table.Features {
		fmt.Fprintf(w, "  feature %q: lookups=%v\n", f.Tag.String(), f.Table.LookupListIndices)
	}
}
