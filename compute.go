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

import (
	"fmt"

	"npmdiff.dev/filediff/internal/config"
	"npmdiff.dev/filediff/internal/myers"
)

// Compute diffs two versions of the file at path and returns a structured,
// renderable result.
//
// Either side may be [Absent] to describe a file that does not exist in that
// version; the result's ChangeType is then fixed to [ChangeAdd] or
// [ChangeDelete] and modify-pair merging is skipped. Identical content yields
// zero hunks and zero stats.
//
// Compute is pure: it performs no I/O, keeps no state between calls, and is
// safe to call concurrently. The only error it can return wraps
// [ErrInvalidOptions].
func Compute(old, new Content, path string, opts ...Option) (Result, error) {
	cfg, err := config.FromOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	change := ChangeModify
	merge := cfg.MergeModified
	switch {
	case !old.present && new.present:
		change = ChangeAdd
		merge = false
	case old.present && !new.present:
		change = ChangeDelete
		merge = false
	}

	oldLines := splitLines(old.text)
	newLines := splitLines(new.text)

	rx, ry := myers.Diff(lineTexts(oldLines), lineTexts(newLines))
	entries := assemble(oldLines, newLines, rx, ry, cfg, merge)
	hunks := insertSkips(entries)

	return Result{
		Path:   path,
		Change: change,
		Hunks:  hunks,
		Stats:  tally(hunks),
	}, nil
}

// assemble walks the edit script and produces the rendered line entries in
// document order. Adjacent runs of deleted and added lines pass through the
// modify-pair merger; matched lines become context entries.
func assemble(oldLines, newLines []Line, rx, ry []bool, cfg config.Config, merge bool) []LineEntry {
	var entries []LineEntry
	n, m := len(oldLines), len(newLines)
	for s, t := 0, 0; s < n || t < m; {
		s0, t0 := s, t
		for s < n && rx[s] {
			s++
		}
		for t < m && ry[t] {
			t++
		}
		if s > s0 || t > t0 {
			entries = mergeRuns(entries, oldLines[s0:s], newLines[t0:t], cfg, merge)
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			entries = append(entries, LineEntry{
				Kind: Context,
				Old:  &oldLines[s],
				New:  &newLines[t],
			})
			s++
			t++
		}
	}
	return entries
}
