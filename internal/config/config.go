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

// Package config provides the shared configuration mechanism for this module.
//
// This package is an implementation detail, the configuration surface for
// users is provided via filediff.Option.
package config

import "fmt"

// Bounds for the tunable parameters. Values outside these ranges are rejected
// by FromOptions, never clamped: misconfiguration should surface immediately
// instead of producing confusing diffs.
const (
	MinPairDistance = 1
	MaxPairDistance = 60

	MinInlineEditLimit = 0
	MaxInlineEditLimit = 10
)

// Config collects all configurable parameters for a single comparison.
type Config struct {
	// MergeModified enables re-pairing adjacent deleted/added lines into
	// single modified entries. When false, the merge stage is skipped
	// entirely; this is a hard short-circuit, not a threshold of zero.
	MergeModified bool

	// MaxChangeRatio is the highest similarity ratio (0 = identical,
	// 1 = nothing in common) at which two lines may still form a modified
	// pair. Must be in [0, 1].
	MaxChangeRatio float64

	// MaxPairDistance bounds the positional offset between a deleted and an
	// added line inside their runs for the two to be pairing candidates.
	// Must be in [MinPairDistance, MaxPairDistance].
	MaxPairDistance int

	// InlineEditLimit is the highest number of discrete character edit
	// operations for which inline highlighting is kept. Lines that changed
	// more thoroughly fall back to a whole-line highlight. Must be in
	// [MinInlineEditLimit, MaxInlineEditLimit].
	InlineEditLimit int
}

// Default is the default configuration. The thresholds are deliberately
// generous: any deleted/added pair within pairing distance may merge unless
// the caller tightens the ratio.
var Default = Config{
	MergeModified:   true,
	MaxChangeRatio:  1.0,
	MaxPairDistance: 30,
	InlineEditLimit: 4,
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions creates a configuration from a set of options. It returns an
// error describing the first parameter that is out of range.
func FromOptions(opts []Option) (Config, error) {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.MaxChangeRatio < 0 || cfg.MaxChangeRatio > 1 {
		return fmt.Errorf("max change ratio %v outside [0, 1]", cfg.MaxChangeRatio)
	}
	if cfg.MaxPairDistance < MinPairDistance || cfg.MaxPairDistance > MaxPairDistance {
		return fmt.Errorf("max pair distance %d outside [%d, %d]", cfg.MaxPairDistance, MinPairDistance, MaxPairDistance)
	}
	if cfg.InlineEditLimit < MinInlineEditLimit || cfg.InlineEditLimit > MaxInlineEditLimit {
		return fmt.Errorf("inline edit limit %d outside [%d, %d]", cfg.InlineEditLimit, MinInlineEditLimit, MaxInlineEditLimit)
	}
	return nil
}
