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
	"slices"

	"npmdiff.dev/filediff/internal/config"
	"npmdiff.dev/filediff/internal/myers"
)

// candidate is a potential modify pair between the d-th deleted and the a-th
// added line of a changed block.
type candidate struct {
	ratio float64
	d, a  int
}

// mergeRuns appends the entries for one changed block: a run of deleted lines
// directly followed by a run of added lines. With merging enabled, similar
// lines from the two runs pair up into modified entries; everything else
// stays pure deleted/added.
//
// Pairing is greedy bipartite matching, not optimal assignment: candidates
// are processed best ratio first and a line consumed by an accepted pair
// leaves candidacy. Greedy keeps the result deterministic and explainable.
// Pairs that would cross an accepted pair are rejected so that both sides of
// the entry stream stay monotonic in line numbers.
func mergeRuns(entries []LineEntry, dels, adds []Line, cfg config.Config, merge bool) []LineEntry {
	if !merge || len(dels) == 0 || len(adds) == 0 {
		for i := range dels {
			entries = append(entries, LineEntry{Kind: Deleted, Old: &dels[i]})
		}
		for i := range adds {
			entries = append(entries, LineEntry{Kind: Added, New: &adds[i]})
		}
		return entries
	}

	var cands []candidate
	for d := range dels {
		for a := range adds {
			if dist := d - a; dist > cfg.MaxPairDistance || -dist > cfg.MaxPairDistance {
				continue
			}
			if r := changeRatio(dels[d].Text, adds[a].Text); r <= cfg.MaxChangeRatio {
				cands = append(cands, candidate{r, d, a})
			}
		}
	}
	slices.SortFunc(cands, func(x, y candidate) int {
		switch {
		case x.ratio != y.ratio:
			if x.ratio < y.ratio {
				return -1
			}
			return 1
		case x.d != y.d:
			return x.d - y.d
		default:
			return x.a - y.a
		}
	})

	partnerD := make([]int, len(dels)) // index into adds, or -1
	partnerA := make([]int, len(adds)) // index into dels, or -1
	for i := range partnerD {
		partnerD[i] = -1
	}
	for i := range partnerA {
		partnerA[i] = -1
	}
	var accepted []candidate
	for _, c := range cands {
		if partnerD[c.d] >= 0 || partnerA[c.a] >= 0 {
			continue
		}
		crosses := false
		for _, p := range accepted {
			if (c.d-p.d)*(c.a-p.a) < 0 {
				crosses = true
				break
			}
		}
		if crosses {
			continue
		}
		partnerD[c.d] = c.a
		partnerA[c.a] = c.d
		accepted = append(accepted, c)
	}

	// Emit in document order. Because accepted pairs never cross, whenever
	// both heads are paired they are paired with each other. Unpaired
	// deletions win ties, matching the sequence differ's bias.
	for d, a := 0, 0; d < len(dels) || a < len(adds); {
		switch {
		case d < len(dels) && partnerD[d] < 0:
			entries = append(entries, LineEntry{Kind: Deleted, Old: &dels[d]})
			d++
		case a < len(adds) && partnerA[a] < 0:
			entries = append(entries, LineEntry{Kind: Added, New: &adds[a]})
			a++
		default:
			entries = append(entries, LineEntry{
				Kind:   Modified,
				Old:    &dels[d],
				New:    &adds[a],
				Inline: inlineSpans(dels[d].Text, adds[a].Text, cfg.InlineEditLimit),
			})
			d++
			a++
		}
	}
	return entries
}

// changeRatio is the similarity ratio between two candidate lines: the share
// of characters of the longer line not covered by a longest common
// subsequence, measured in code points.
//
// The ratio is in [0, 1]; 0 means the lines are identical, 1 that they have
// no characters in common. This makes a MaxChangeRatio of 0 pair only
// byte-for-byte identical lines, as documented.
func changeRatio(old, new string) float64 {
	x, y := []rune(old), []rune(new)
	longer := max(len(x), len(y))
	if longer == 0 {
		return 0
	}
	rx, _ := myers.Diff(x, y)
	common := len(x)
	for _, deleted := range rx[:len(x)] {
		if deleted {
			common--
		}
	}
	return float64(longer-common) / float64(longer)
}
