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

// Package benchmarks compares this module against other diff libraries.
//
// The implementations don't produce identical outputs — each library has its
// own output model — but all of them reduce to per-file addition/deletion
// totals, which is enough to compare cost on the same inputs.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"npmdiff.dev/filediff"
)

type Impl struct {
	Name  string
	Stats func(x, y string) (adds, dels int)
}

var Impls = []Impl{
	{
		Name: "filediff",
		Stats: func(x, y string) (adds, dels int) {
			res, err := filediff.Compute(filediff.Present(x), filediff.Present(y), "bench")
			if err != nil {
				panic(err)
			}
			return res.Stats.Additions, res.Stats.Deletions
		},
	},
	{
		Name: "filediff-no-merge",
		Stats: func(x, y string) (adds, dels int) {
			res, err := filediff.Compute(filediff.Present(x), filediff.Present(y), "bench",
				filediff.MergeModified(false))
			if err != nil {
				panic(err)
			}
			return res.Stats.Additions, res.Stats.Deletions
		},
	},
	{
		Name: "diffmatchpatch",
		Stats: func(x, y string) (adds, dels int) {
			// Line-mode diff: lines are mapped to runes so the char-level
			// algorithm effectively diffs lines.
			dmp := diffmatchpatch.New()
			rx, ry, _ := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			for _, d := range diffs {
				n := len([]rune(d.Text))
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					adds += n
				case diffmatchpatch.DiffDelete:
					dels += n
				}
			}
			return adds, dels
		},
	},
	{
		Name: "udiff",
		Stats: func(x, y string) (adds, dels int) {
			u := udiff.Unified("x", "y", x, y)
			for _, line := range strings.Split(u, "\n") {
				switch {
				case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				case strings.HasPrefix(line, "+"):
					adds++
				case strings.HasPrefix(line, "-"):
					dels++
				}
			}
			return adds, dels
		},
	},
}
