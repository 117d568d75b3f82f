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

package benchmarks

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

type testdata struct {
	name string
	x, y string
}

// synthesize builds file pairs resembling package version bumps: mostly
// stable lines with scattered edits, plus one pair with a large moved block.
func synthesize() []testdata {
	rng := rand.New(rand.NewPCG(7, 23))
	line := func(i int) string {
		sum := sha256.Sum256([]byte{byte(i), byte(i >> 8)})
		return fmt.Sprintf("const v%04d = %x", i, sum[:8])
	}

	base := make([]string, 2000)
	for i := range base {
		base[i] = line(i)
	}

	sparse := make([]string, len(base))
	copy(sparse, base)
	for i := 0; i < len(sparse); i += 40 {
		sparse[i] = sparse[i] + " // changed"
	}

	churn := make([]string, 0, len(base))
	for i, l := range base {
		switch rng.IntN(10) {
		case 0: // dropped
		case 1:
			churn = append(churn, line(100000+i), l)
		default:
			churn = append(churn, l)
		}
	}

	moved := make([]string, 0, len(base))
	moved = append(moved, base[500:1000]...)
	moved = append(moved, base[:500]...)
	moved = append(moved, base[1000:]...)

	join := func(lines []string) string { return strings.Join(lines, "\n") + "\n" }
	return []testdata{
		{name: "sparse", x: join(base), y: join(sparse)},
		{name: "churn", x: join(base), y: join(churn)},
		{name: "moved-block", x: join(base), y: join(moved)},
	}
}

func BenchmarkDiffs(b *testing.B) {
	tests := synthesize()
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range tests {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_, _ = impl.Stats(td.x, td.y)
					}
					b.StopTimer()

					adds, dels := impl.Stats(td.x, td.y)
					b.ReportMetric(float64(adds+dels), "edits")
				})
			}
		})
	}
}
