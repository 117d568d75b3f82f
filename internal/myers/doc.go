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

// Package myers implements Myers' minimal edit script algorithm in its linear
// space variant (section 4.2 of the paper).
//
// The algorithm is a graph search over the edit graph of the two inputs: a
// step right deletes an element of x, a step down inserts an element of y,
// and a free diagonal step consumes a matching element from both. A minimal
// edit script is a minimum-cost path from the top left to the bottom right of
// the grid. Myers' algorithm finds one greedily in O((N+M)·D) time and linear
// space by simultaneously extending furthest-reaching d-paths forwards from
// the start and backwards from the end until the two frontiers overlap; the
// overlap yields a middle run of matches, and the rectangles before and after
// it are solved recursively.
//
// This implementation always searches for an optimal script. The inputs this
// module sees are size-capped upstream, so the cost-limiting heuristics found
// in diff tools for arbitrarily large files are not needed here, and the
// stages built on top rely on minimal scripts for deterministic pairing.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations.
// Algorithmica 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers
