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

package filediff

import "npmdiff.dev/filediff/internal/myers"

// inlineSpans computes the character-level highlighting spans for one
// modified pair. Old-side spans alternate between SpanEqual and SpanDelete,
// new-side spans between SpanEqual and SpanInsert; old-side spans come first
// and each side's spans partition that side's text in code points.
//
// If the minimal character edit script contains more than limit discrete edit
// operations, the line changed too thoroughly for per-character highlighting
// to help: the spans degrade to a single whole-line delete on the old side
// and a single whole-line insert on the new side.
func inlineSpans(old, new string, limit int) []InlineSpan {
	x, y := []rune(old), []rune(new)
	rx, ry := myers.Diff(x, y)
	if editOps(rx[:len(x)], ry[:len(y)]) > limit {
		var spans []InlineSpan
		if len(x) > 0 {
			spans = append(spans, InlineSpan{Side: SideOld, Kind: SpanDelete, Start: 0, End: len(x)})
		}
		if len(y) > 0 {
			spans = append(spans, InlineSpan{Side: SideNew, Kind: SpanInsert, Start: 0, End: len(y)})
		}
		return spans
	}
	spans := sideSpans(nil, SideOld, SpanDelete, rx[:len(x)])
	return sideSpans(spans, SideNew, SpanInsert, ry[:len(y)])
}

// editOps counts the discrete edit operations of an edit script: every
// maximal run of deleted or inserted characters is one operation.
func editOps(rx, ry []bool) int {
	ops := 0
	for _, flags := range [][]bool{rx, ry} {
		inRun := false
		for _, edited := range flags {
			if edited && !inRun {
				ops++
			}
			inRun = edited
		}
	}
	return ops
}

// sideSpans appends the spans for one side: maximal runs of edited
// characters become edited spans, everything between them SpanEqual.
func sideSpans(spans []InlineSpan, side Side, edited SpanKind, flags []bool) []InlineSpan {
	for start := 0; start < len(flags); {
		end := start
		for end < len(flags) && flags[end] == flags[start] {
			end++
		}
		kind := SpanEqual
		if flags[start] {
			kind = edited
		}
		spans = append(spans, InlineSpan{Side: side, Kind: kind, Start: start, End: end})
		start = end
	}
	return spans
}
