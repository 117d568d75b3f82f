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

// Package compare diffs the files of a whole package pair.
//
// It is a thin aggregation layer over [npmdiff.dev/filediff]: each changed
// file is diffed independently and the per-file stats are totaled. Fetching
// file content (size-capped, timeout-bound) is the caller's concern; this
// package only ever sees strings or the absent sentinel.
package compare

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"npmdiff.dev/filediff"
)

// Status describes a file's presence across the two package versions.
//
// This is distinct from [filediff.ChangeType], which describes the shape of a
// single file's diff. The two enumerations answer different questions (file
// existence change vs. diff-content shape) and are deliberately kept apart.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Status
type Status int

const (
	ModifiedFile Status = iota // present in both versions
	AddedFile                  // only present in the new version
	RemovedFile                // only present in the old version
)

// File is one file of a package pair, with its content (or [filediff.Absent])
// for both versions.
type File struct {
	Path     string
	Old, New filediff.Content
}

// Status derives the file's presence classification. A file absent on both
// sides is reported as ModifiedFile; callers should not construct such pairs.
func (f File) Status() Status {
	switch {
	case !f.Old.IsPresent() && f.New.IsPresent():
		return AddedFile
	case f.Old.IsPresent() && !f.New.IsPresent():
		return RemovedFile
	default:
		return ModifiedFile
	}
}

// Result is the aggregated comparison of a package pair. Files preserves the
// input order; Stats totals all per-file stats.
type Result struct {
	Files []filediff.Result
	Stats filediff.Stats
}

// Diff computes the per-file diffs for files and aggregates their stats. The
// options apply to every file.
//
// The per-file computations are pure and independent, so they run in
// parallel, bounded by GOMAXPROCS. The first invalid-options error aborts the
// comparison.
func Diff(files []File, opts ...filediff.Option) (Result, error) {
	results := make([]filediff.Result, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		g.Go(func() error {
			res, err := filediff.Compute(f.Old, f.New, f.Path, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total filediff.Stats
	for _, res := range results {
		total.Additions += res.Stats.Additions
		total.Deletions += res.Stats.Deletions
	}
	return Result{Files: results, Stats: total}, nil
}
