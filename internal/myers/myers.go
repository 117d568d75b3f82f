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

package myers

import "math"

// Diff compares the contents of x and y and returns result vectors describing
// a minimal edit script between them: rx[s] reports that x[s] is deleted,
// ry[t] that y[t] is inserted. Elements flagged on neither side match up
// pairwise in order.
//
// The returned vectors have one extra trailing element so that callers can
// walk them without bounds checks at the end of a run.
//
// When several minimal scripts exist, ties are broken by extending deletions
// before insertions, which matches the earliest possible old line to the
// earliest possible new line.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	switch {
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
	default:
		// The v-arrays store, per diagonal k = s - t, the s-coordinate of
		// the furthest reaching d-path on that diagonal. We number the
		// diagonals with their absolute k so forward and backward searches
		// can check for overlap without translation; the +3 leaves room for
		// the middle point and a border element on each side that saves a
		// special case in the hot loops.
		diagonals := (smax - smin) + (tmax - tmin)
		vlen := 2*diagonals + 3
		buf := make([]int, 2*vlen)
		m := &search[T]{
			x: x, y: y,
			vf: buf[:vlen], vb: buf[vlen:],
			v0: diagonals + 1,
			rx: rx, ry: ry,
		}
		m.compare(smin, smax, tmin, tmax)
	}
	return rx, ry
}

type search[T comparable] struct {
	x, y   []T
	vf, vb []int // v-arrays for the forward and backward frontier
	v0     int   // offset translating k to a v-array index
	rx, ry []bool
}

// compare finds an optimal edit script from (smin, tmin) to (smax, tmax) and
// records it in the result vectors.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a
// common suffix.
func (m *search[T]) compare(smin, smax, tmin, tmax int) {
	switch {
	case smin == smax:
		// x side is empty, everything in y is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		// y side is empty, everything in x is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		// Split the rectangle at a middle run of matches (s0,t0)-(s1,t1)
		// that lies on an optimal path and recurse into the rectangles
		// before and after it. By construction neither sub-rectangle has a
		// common prefix or suffix.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a, potentially empty, run of diagonals in the
// middle of an optimal path from (smin, tmin) to (smax, tmax) by searching
// forwards and backwards simultaneously until the frontiers overlap.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a
// common suffix and may not both be empty.
func (m *search[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, the rectangle spans k = smin-tmax up to
	// k = smax-tmin.
	kmin, kmax := smin-tmax, smax-tmin

	// The forward search starts on the diagonal through (smin, tmin), the
	// backward search on the diagonal through (smax, tmax).
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// A path with d non-diagonal edges ends on an odd diagonal exactly if d
	// is odd, so overlaps can only show up on one side per parity.
	odd := (N-M)%2 != 0

	// There is no 0-path (no common prefix or suffix), so seed the trivial
	// d=0 frontier and start searching at d=1. This keeps d==0 special cases
	// out of the k-loops.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forward search: extend the furthest reaching (d-1)-paths by one
		// horizontal or vertical edge and then as many diagonal edges as
		// possible. The frontier widens by one diagonal per iteration until
		// it hits the rectangle bounds; beyond the bounds a border value
		// keeps the selection logic below branch-free.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Either continue the path from diagonal k+1 with a vertical
			// edge, or the one from k-1 with a horizontal edge. On ties the
			// horizontal edge wins: deletions before insertions.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the diagonals as far as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t
			}
		}

		// Backward search, the mirror image of the above.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s1, t1 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s1, t, t1
			}
		}
	}
}
