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

import "strings"

// splitLines normalizes raw file content into ordered, 1-based lines.
// \r\n and \n line endings are treated uniformly and a final newline does not
// produce a trailing empty line. Empty content has no lines.
func splitLines(content string) []Line {
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{
			Number: i + 1,
			Text:   strings.TrimSuffix(text, "\r"),
		}
	}
	return lines
}

// lineTexts projects lines onto their text for comparison by content
// equality, not identity.
func lineTexts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}
	return texts
}
