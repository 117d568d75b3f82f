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

// Display tuning for collapsing unchanged regions. A context run is collapsed
// only when strictly longer than skipThreshold lines; skipContext boundary
// lines stay visible next to surrounding changes so that no change renders
// with zero context. skipThreshold must be at least 2*skipContext+1 so a
// collapse always hides at least one line.
const (
	skipThreshold = 8
	skipContext   = 3
)

// insertSkips groups the entry stream into hunks, replacing long runs of
// context entries with skip blocks. A diff without any changed entries has no
// hunks at all.
func insertSkips(entries []LineEntry) []Hunk {
	changed := false
	for _, e := range entries {
		if e.Kind != Context {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	var hunks []Hunk
	var block []LineEntry
	flush := func() {
		if len(block) > 0 {
			hunks = append(hunks, Hunk{Type: HunkLines, Lines: block})
			block = nil
		}
	}

	for i := 0; i < len(entries); {
		if entries[i].Kind != Context {
			block = append(block, entries[i])
			i++
			continue
		}

		// Maximal run of context entries.
		j := i
		for j < len(entries) && entries[j].Kind == Context {
			j++
		}

		// Runs touching the start or end of the file only need boundary
		// context on the side facing a change.
		head, tail := skipContext, skipContext
		if i == 0 {
			head = 0
		}
		if j == len(entries) {
			tail = 0
		}

		if j-i > skipThreshold && j-i > head+tail {
			block = append(block, entries[i:i+head]...)
			flush()
			hidden := entries[i+head : j-tail]
			hunks = append(hunks, Hunk{
				Type:     HunkSkip,
				Hidden:   len(hidden),
				OldRange: LineRange{hidden[0].Old.Number, hidden[len(hidden)-1].Old.Number},
				NewRange: LineRange{hidden[0].New.Number, hidden[len(hidden)-1].New.Number},
			})
			block = append(block, entries[j-tail:j]...)
		} else {
			block = append(block, entries[i:j]...)
		}
		i = j
	}
	flush()
	return hunks
}
