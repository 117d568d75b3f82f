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

import "npmdiff.dev/filediff/internal/config"

// Option configures the behavior of [Compute]. Options carrying values
// outside their documented ranges cause Compute to fail with
// [ErrInvalidOptions].
type Option = config.Option

// MergeModified controls whether adjacent deleted and added lines that are
// sufficiently similar are re-paired into single modified entries. The
// default is true.
//
// When disabled, every changed line stays pure added or deleted regardless of
// similarity; [MaxChangeRatio] and [MaxPairDistance] have no effect.
func MergeModified(enable bool) Option {
	return func(cfg *config.Config) {
		cfg.MergeModified = enable
	}
}

// MaxChangeRatio sets the highest similarity ratio at which a deleted and an
// added line may still merge into a modified pair. The ratio is the share of
// characters of the longer line that differ: 0 means identical, 1 means
// nothing in common. Must be in [0, 1]. The default is 1, which lets any
// candidate pair merge.
func MaxChangeRatio(r float64) Option {
	return func(cfg *config.Config) {
		cfg.MaxChangeRatio = r
	}
}

// MaxPairDistance sets the largest positional offset between a deleted and an
// added line inside a changed block for the two to be considered for merging.
// It bounds the matching search and prevents pairing unrelated far-apart
// lines. Must be in [1, 60]. The default is 30.
func MaxPairDistance(n int) Option {
	return func(cfg *config.Config) {
		cfg.MaxPairDistance = n
	}
}

// InlineEditLimit sets the highest number of discrete character edit
// operations for which a modified line keeps per-character inline spans.
// Lines that changed more thoroughly fall back to a single whole-line
// highlight on each side, avoiding visually noisy output. Must be in
// [0, 10]; 0 disables inline highlighting entirely. The default is 4.
func InlineEditLimit(n int) Option {
	return func(cfg *config.Config) {
		cfg.InlineEditLimit = n
	}
}
