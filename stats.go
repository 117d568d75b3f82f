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

// tally derives the change totals from the final hunk list. Stats are never
// computed independently of the hunks, so the two cannot drift apart.
func tally(hunks []Hunk) Stats {
	var st Stats
	for _, h := range hunks {
		if h.Type != HunkLines {
			continue // skip blocks stand in for unchanged lines
		}
		for _, e := range h.Lines {
			switch e.Kind {
			case Added:
				st.Additions++
			case Deleted:
				st.Deletions++
			case Modified:
				st.Additions++
				st.Deletions++
			}
		}
	}
	return st
}
