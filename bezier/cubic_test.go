// seehuhn.de/go/tessellate - path tessellation for GPU rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bezier

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestCubicSplit(t *testing.T) {
	c := CubicSegment{From: Pt(0, 0), Ctrl1: Pt(10, 30), Ctrl2: Pt(40, 30), To: Pt(50, 0)}
	for _, s := range []float32{0.1, 0.25, 0.5, 0.9} {
		first, second := c.Split(s)
		if first.From != c.From || second.To != c.To {
			t.Errorf("t=%g: end points not preserved", s)
		}
		if first.To != second.From {
			t.Errorf("t=%g: halves do not join: %v != %v", s, first.To, second.From)
		}
		for _, u := range []float32{0, 0.3, 0.7, 1} {
			p := first.Sample(u)
			q := c.Sample(u * s)
			if d := p.Sub(q).Length(); d > 1e-4 {
				t.Errorf("t=%g, u=%g: first half off by %g", s, u, d)
			}
			p = second.Sample(u)
			q = c.Sample(s + u*(1-s))
			if d := p.Sub(q).Length(); d > 1e-4 {
				t.Errorf("t=%g, u=%g: second half off by %g", s, u, d)
			}
		}
	}
}

func TestCubicSplitRange(t *testing.T) {
	c := CubicSegment{From: Pt(0, 0), Ctrl1: Pt(10, 30), Ctrl2: Pt(40, -30), To: Pt(50, 0)}
	r := c.SplitRange(0.2, 0.6)
	for _, u := range []float32{0, 0.25, 0.5, 0.75, 1} {
		p := r.Sample(u)
		q := c.Sample(0.2 + 0.4*u)
		if d := p.Sub(q).Length(); d > 1e-3 {
			t.Errorf("u=%g: off by %g", u, d)
		}
	}
}

func TestInflectionPoints(t *testing.T) {
	type testCase struct {
		name  string
		curve CubicSegment
		want  []float32
	}
	cases := []testCase{
		{
			name:  "arc",
			curve: CubicSegment{From: Pt(0, 0), Ctrl1: Pt(55, 0), Ctrl2: Pt(100, 45), To: Pt(100, 100)},
			want:  nil,
		},
		{
			name:  "s-curve",
			curve: CubicSegment{From: Pt(0, 0), Ctrl1: Pt(1, 1), Ctrl2: Pt(2, -1), To: Pt(3, 0)},
			want:  []float32{0.5},
		},
		{
			name:  "two",
			curve: CubicSegment{From: Pt(0, 0), Ctrl1: Pt(-3, -3), Ctrl2: Pt(-3, -2), To: Pt(4, 0)},
			want:  []float32{0.18251316, 0.65748684},
		},
		{
			name:  "at end",
			curve: CubicSegment{From: Pt(0, 0), Ctrl1: Pt(1, 3), Ctrl2: Pt(3, -3), To: Pt(2, 0)},
			want:  []float32{2.0 / 3.0},
		},
		{
			name:  "straight",
			curve: CubicSegment{From: Pt(0, 0), Ctrl1: Pt(1, 1), Ctrl2: Pt(2, 2), To: Pt(3, 3)},
			want:  []float32{0},
		},
		{
			name:  "point",
			curve: CubicSegment{From: Pt(5, 5), Ctrl1: Pt(5, 5), Ctrl2: Pt(5, 5), To: Pt(5, 5)},
			want:  []float32{0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, n := tc.curve.InflectionPoints()
			if n != len(tc.want) {
				t.Fatalf("got %d inflection points %v, want %v", n, ts[:n], tc.want)
			}
			for i, want := range tc.want {
				if math32.Abs(ts[i]-want) > 1e-4 {
					t.Errorf("inflection %d: got %g, want %g", i, ts[i], want)
				}
			}
		})
	}
}

func TestInflectionAtEnd(t *testing.T) {
	// The second root is at exactly t=1 and is not reported. The curve
	// must still be flattened all the way to its end point.
	c := CubicSegment{From: Pt(0, 0), Ctrl1: Pt(10, 30), Ctrl2: Pt(30, -30), To: Pt(20, 0)}
	ts, n := c.InflectionPoints()
	if n != 1 || ts[0] >= 1 {
		t.Fatalf("unexpected inflection points %v", ts[:n])
	}
	lo, hi := c.linearRange(1, 0.1)
	if !(hi > lo) || hi != 1 {
		t.Errorf("linear range at t=1 is [%g, %g]", lo, hi)
	}

	var last Point
	count := 0
	c.ForEachFlattened(0.1, func(p Point) {
		last = p
		count++
	})
	if last != c.To {
		t.Errorf("last point %v, want %v", last, c.To)
	}
	if count < 2 {
		t.Errorf("only %d points", count)
	}
}

func TestDeviationBound(t *testing.T) {
	curves := []CubicSegment{
		{From: Pt(0, 0), Ctrl1: Pt(10, 30), Ctrl2: Pt(40, 30), To: Pt(50, 0)},
		{From: Pt(0, 0), Ctrl1: Pt(100, 100), Ctrl2: Pt(0, 100), To: Pt(100, 0)},
		{From: Pt(0, 0), Ctrl1: Pt(-30, 10), Ctrl2: Pt(80, 10), To: Pt(50, 0)},
		{From: Pt(3, 3), Ctrl1: Pt(20, 50), Ctrl2: Pt(-20, 50), To: Pt(3, 3)},
	}
	for i, c := range curves {
		bound := c.deviation()
		b := c.Baseline()
		for k := range 101 {
			p := c.Sample(float32(k) / 100)
			if d := b.distanceTo(p); d > bound*1.0001+1e-4 {
				t.Errorf("curve %d: distance %g exceeds bound %g", i, d, bound)
				break
			}
		}
	}
}
