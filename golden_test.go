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

package filediff_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"npmdiff.dev/filediff"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden runs Compute over txtar archives in testdata. Each archive holds
// the files "old" and "new" (omitting one marks that side absent), an optional
// "options" file with one setting per line, and the rendered result in "want".
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatalf("failed to read testdata: %v", err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(file, "testdata/"), ".txt")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("failed to parse test case: %v", err)
			}

			before, after := filediff.Absent, filediff.Absent
			var opts []filediff.Option
			var want []byte
			wantIdx := -1
			for i, f := range ar.Files {
				switch f.Name {
				case "old":
					before = filediff.Present(string(f.Data))
				case "new":
					after = filediff.Present(string(f.Data))
				case "options":
					opts = parseOptions(t, f.Data)
				case "want":
					want = f.Data
					wantIdx = i
				default:
					t.Fatalf("unknown file in archive: %v", f.Name)
				}
			}

			res, err := filediff.Compute(before, after, name, opts...)
			if err != nil {
				t.Fatalf("Compute() failed: %v", err)
			}
			got := render(res)

			if *update {
				if wantIdx < 0 {
					ar.Files = append(ar.Files, txtar.File{Name: "want"})
					wantIdx = len(ar.Files) - 1
				}
				ar.Files[wantIdx].Data = got
				if err := os.WriteFile(file, txtar.Format(ar), 0o666); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
				return
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("rendered diff is different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, want, diff)
			}
		})
	}
}

func parseOptions(t *testing.T, data []byte) []filediff.Option {
	t.Helper()
	var opts []filediff.Option
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "merge":
			v, err := strconv.ParseBool(value)
			if err != nil {
				t.Fatalf("bad merge value %q: %v", value, err)
			}
			opts = append(opts, filediff.MergeModified(v))
		case "max-change-ratio":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				t.Fatalf("bad max-change-ratio value %q: %v", value, err)
			}
			opts = append(opts, filediff.MaxChangeRatio(v))
		case "max-pair-distance":
			v, err := strconv.Atoi(value)
			if err != nil {
				t.Fatalf("bad max-pair-distance value %q: %v", value, err)
			}
			opts = append(opts, filediff.MaxPairDistance(v))
		case "inline-edit-limit":
			v, err := strconv.Atoi(value)
			if err != nil {
				t.Fatalf("bad inline-edit-limit value %q: %v", value, err)
			}
			opts = append(opts, filediff.InlineEditLimit(v))
		default:
			t.Fatalf("unknown option: %q", key)
		}
	}
	return opts
}

func render(res filediff.Result) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "change: %v\n", res.Change)
	for _, h := range res.Hunks {
		if h.Type == filediff.HunkSkip {
			fmt.Fprintf(&b, "@@ skip %d old=%d-%d new=%d-%d @@\n",
				h.Hidden, h.OldRange.Start, h.OldRange.End, h.NewRange.Start, h.NewRange.End)
			continue
		}
		for _, e := range h.Lines {
			switch e.Kind {
			case filediff.Context:
				fmt.Fprintf(&b, "  %s\n", e.Old.Text)
			case filediff.Deleted:
				fmt.Fprintf(&b, "- %s\n", e.Old.Text)
			case filediff.Added:
				fmt.Fprintf(&b, "+ %s\n", e.New.Text)
			case filediff.Modified:
				fmt.Fprintf(&b, "~ %s => %s\n", e.Old.Text, e.New.Text)
			}
		}
	}
	fmt.Fprintf(&b, "stats: +%d -%d\n", res.Stats.Additions, res.Stats.Deletions)
	return b.Bytes()
}
