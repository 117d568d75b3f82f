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

// Package filediff computes structured, renderable diffs between two versions
// of a text file.
//
// The output is not a flat patch string but a list of hunks with per-line
// classification: unchanged context, added lines, deleted lines, and —
// optionally — "modified" lines where a deleted and an added line were similar
// enough to be displayed as a single changed line. Modified lines carry
// character-level spans for inline highlighting, and long runs of unchanged
// context collapse into skip blocks for compact display.
//
// The entry point is [Compute]. It is pure and deterministic: identical inputs
// and options always produce identical results, no I/O is performed, and
// concurrent calls need no coordination. Behavior is tuned with options such
// as [MergeModified] and [MaxChangeRatio]; invalid option values are rejected
// with an error wrapping [ErrInvalidOptions] rather than clamped.
//
// For diffing several files of a package pair at once, see
// [npmdiff.dev/filediff/compare].
package filediff

import "errors"

// ErrInvalidOptions is returned by [Compute] when an option carries a value
// outside its documented range.
var ErrInvalidOptions = errors.New("invalid options")

// LineKind classifies a single rendered diff row.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=LineKind
type LineKind int

const (
	Context  LineKind = iota // line is unchanged, present in both versions
	Added                    // line only exists in the new version
	Deleted                  // line only exists in the old version
	Modified                 // a deleted/added pair displayed as one changed line
)

// SpanKind classifies an inline span within a modified line.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=SpanKind
type SpanKind int

const (
	SpanEqual  SpanKind = iota // characters present on both sides
	SpanInsert                 // characters only present on the new side
	SpanDelete                 // characters only present on the old side
)

// Side identifies which version of a line an inline span refers to.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Side
type Side int

const (
	SideOld Side = iota
	SideNew
)

// ChangeType describes the shape of a file diff: whether the whole file was
// added, deleted, or changed in place.
//
// This is deliberately distinct from [npmdiff.dev/filediff/compare.Status],
// which describes file presence across a multi-file comparison. The two
// enumerations answer different questions and must not be conflated.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=ChangeType
type ChangeType int

const (
	ChangeModify ChangeType = iota // both versions present
	ChangeAdd                      // old version absent
	ChangeDelete                   // new version absent
)

// HunkType discriminates the two [Hunk] variants.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=HunkType
type HunkType int

const (
	HunkLines HunkType = iota // a block of rendered lines
	HunkSkip                  // a collapsed run of unchanged lines
)

// Line is a single logical line of one file version. Numbers are 1-based.
type Line struct {
	Number int
	Text   string
}

// InlineSpan is a sub-range of a modified line's text, used for
// character-level highlighting. Start and End are offsets in Unicode code
// points, not bytes; End is exclusive. The spans of a given side are
// contiguous and exactly partition that side's text.
type InlineSpan struct {
	Side       Side
	Kind       SpanKind
	Start, End int
}

// LineEntry is one rendered diff row.
//
//   - Context and Modified entries carry both Old and New.
//   - Added entries carry only New, Deleted entries carry only Old.
//   - Inline is only set on Modified entries.
type LineEntry struct {
	Kind   LineKind
	Old    *Line
	New    *Line
	Inline []InlineSpan
}

// LineRange is an inclusive 1-based range of line numbers.
type LineRange struct {
	Start, End int
}

// Hunk is one block of diff output: either rendered lines (HunkLines) or a
// collapsed run of unchanged context (HunkSkip).
//
// Concatenating the line ranges implied by all hunks of a [Result] in order
// reconstructs both file versions exactly once each.
type Hunk struct {
	Type HunkType

	// Lines is set for HunkLines.
	Lines []LineEntry

	// Hidden, OldRange and NewRange are set for HunkSkip. Hidden is the
	// number of unchanged lines the block stands in for.
	Hidden             int
	OldRange, NewRange LineRange
}

// Stats totals the line changes of a diff. A modified line counts as one
// addition and one deletion; skip blocks contribute nothing.
type Stats struct {
	Additions, Deletions int
}

// Result is the diff of a single file pair.
type Result struct {
	Path   string
	Change ChangeType
	Hunks  []Hunk
	Stats  Stats
}

// Content is one side of a comparison: either the full text of a file version
// or the distinguished "file absent" value. An absent file and an empty file
// are different cases; both are valid inputs to [Compute].
//
// The zero value is [Absent].
type Content struct {
	text    string
	present bool
}

// Absent is the Content of a file version that does not exist.
var Absent Content

// Present returns the Content of an existing file with the given text. The
// text may be empty: a zero-byte file is present, not absent.
func Present(text string) Content {
	return Content{text: text, present: true}
}

// IsPresent reports whether the file version exists.
func (c Content) IsPresent() bool { return c.present }

// Text returns the file text. It is empty for absent files; use [Content.IsPresent]
// to tell an absent file from an empty one.
func (c Content) Text() string { return c.text }
