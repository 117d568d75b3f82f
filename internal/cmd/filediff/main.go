// Copyright 2026 The filediff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// filediff is a small demo tool for the engine: it diffs two files and
// renders the hunks with ANSI colors, including inline highlighting on
// modified lines and skip separators for collapsed context.
//
// Usage:
//
//	filediff [flags] <old-file> <new-file>
//
// Passing "-" for a file marks that version as absent, which is different
// from an existing empty file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"npmdiff.dev/filediff"
)

// Select Graphic Rendition sequences.
const (
	sgrReset  = "\033[0m"
	sgrRed    = "\033[31m"
	sgrGreen  = "\033[32m"
	sgrFaint  = "\033[2m"
	sgrInvert = "\033[7m"
)

var (
	merge       = flag.Bool("merge", true, "merge similar deleted/added lines into modified lines")
	changeRatio = flag.Float64("max-change-ratio", 1.0, "highest dissimilarity ratio at which lines still merge [0,1]")
	distance    = flag.Int("max-pair-distance", 30, "largest positional offset between merge candidates [1,60]")
	inlineLimit = flag.Int("inline-edit-limit", 4, "most character edits that still get inline highlighting [0,10]")
	noColor     = flag.Bool("no-color", false, "disable ANSI colors")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 args, got %d", len(args))
	}

	old, err := readContent(args[0])
	if err != nil {
		return err
	}
	new, err := readContent(args[1])
	if err != nil {
		return err
	}

	res, err := filediff.Compute(old, new, args[1],
		filediff.MergeModified(*merge),
		filediff.MaxChangeRatio(*changeRatio),
		filediff.MaxPairDistance(*distance),
		filediff.InlineEditLimit(*inlineLimit),
	)
	if err != nil {
		return err
	}

	render(os.Stdout, res)
	return nil
}

func readContent(path string) (filediff.Content, error) {
	if path == "-" {
		return filediff.Absent, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return filediff.Absent, fmt.Errorf("reading %s: %v", path, err)
	}
	return filediff.Present(string(data)), nil
}

func render(w *os.File, res filediff.Result) {
	fmt.Fprintf(w, "%s%s: %v, +%d -%d%s\n",
		paint(sgrFaint), res.Path, res.Change, res.Stats.Additions, res.Stats.Deletions, paint(sgrReset))
	for _, h := range res.Hunks {
		switch h.Type {
		case filediff.HunkSkip:
			fmt.Fprintf(w, "%s@@ %d unchanged lines (%d-%d / %d-%d) @@%s\n",
				paint(sgrFaint), h.Hidden,
				h.OldRange.Start, h.OldRange.End, h.NewRange.Start, h.NewRange.End,
				paint(sgrReset))
		case filediff.HunkLines:
			for _, e := range h.Lines {
				switch e.Kind {
				case filediff.Context:
					fmt.Fprintf(w, "  %s\n", e.Old.Text)
				case filediff.Deleted:
					fmt.Fprintf(w, "%s- %s%s\n", paint(sgrRed), e.Old.Text, paint(sgrReset))
				case filediff.Added:
					fmt.Fprintf(w, "%s+ %s%s\n", paint(sgrGreen), e.New.Text, paint(sgrReset))
				case filediff.Modified:
					fmt.Fprintf(w, "%s- %s%s\n", paint(sgrRed),
						highlight(e.Old.Text, e.Inline, filediff.SideOld, sgrRed), paint(sgrReset))
					fmt.Fprintf(w, "%s+ %s%s\n", paint(sgrGreen),
						highlight(e.New.Text, e.Inline, filediff.SideNew, sgrGreen), paint(sgrReset))
				}
			}
		}
	}
}

// highlight renders one side of a modified line, inverting the spans that
// were inserted or deleted. Span offsets are code points, so the text is
// addressed as runes.
func highlight(text string, spans []filediff.InlineSpan, side filediff.Side, base string) string {
	if *noColor {
		return text
	}
	runes := []rune(text)
	var sb strings.Builder
	for _, sp := range spans {
		if sp.Side != side {
			continue
		}
		seg := string(runes[sp.Start:sp.End])
		if sp.Kind == filediff.SpanEqual {
			sb.WriteString(seg)
		} else {
			sb.WriteString(sgrInvert)
			sb.WriteString(seg)
			sb.WriteString(sgrReset)
			sb.WriteString(base)
		}
	}
	if sb.Len() == 0 {
		return text
	}
	return sb.String()
}

func paint(code string) string {
	if *noColor {
		return ""
	}
	return code
}
