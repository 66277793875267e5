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
	"math"
	"testing"
)

func TestIntersectionT(t *testing.T) {
	type testCase struct {
		name   string
		a, b   LineSegment
		ok     bool
		ta, tb float64
	}
	cases := []testCase{
		{
			name: "cross",
			a:    LineSegment{From: Pt(0, 0), To: Pt(2, 2)},
			b:    LineSegment{From: Pt(0, 2), To: Pt(2, 0)},
			ok:   true, ta: 0.5, tb: 0.5,
		},
		{
			name: "off-centre",
			a:    LineSegment{From: Pt(0, 0), To: Pt(4, 0)},
			b:    LineSegment{From: Pt(1, -1), To: Pt(1, 3)},
			ok:   true, ta: 0.25, tb: 0.25,
		},
		{
			name: "shared end point",
			a:    LineSegment{From: Pt(0, 0), To: Pt(1, 1)},
			b:    LineSegment{From: Pt(1, 1), To: Pt(2, 0)},
		},
		{
			name: "parallel",
			a:    LineSegment{From: Pt(0, 0), To: Pt(1, 1)},
			b:    LineSegment{From: Pt(0, 1), To: Pt(1, 2)},
		},
		{
			name: "disjoint",
			a:    LineSegment{From: Pt(0, 0), To: Pt(1, 0)},
			b:    LineSegment{From: Pt(2, -1), To: Pt(2, 1)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta, tb, ok := tc.a.IntersectionT(tc.b)
			if ok != tc.ok {
				t.Fatalf("got ok=%t, want %t", ok, tc.ok)
			}
			if !ok {
				return
			}
			if math.Abs(ta-tc.ta) > 1e-9 || math.Abs(tb-tc.tb) > 1e-9 {
				t.Errorf("got (%g, %g), want (%g, %g)", ta, tb, tc.ta, tc.tb)
			}
			p := tc.a.Sample64(ta)
			q := tc.b.Sample64(tb)
			if p.SquareDistance(q) > 1e-10 {
				t.Errorf("intersection points differ: %v %v", p, q)
			}
		})
	}
}

func TestSolveXForY(t *testing.T) {
	l := LineSegment{From: Pt(0, 0), To: Pt(10, 20)}
	if x := l.SolveXForY(10); x != 5 {
		t.Errorf("got %g, want 5", x)
	}
	if x := l.SolveXForY(0); x != 0 {
		t.Errorf("got %g, want 0", x)
	}

	h := LineSegment{From: Pt(3, 1), To: Pt(8, 1)}
	if x := h.SolveXForY(1); x != 3 {
		t.Errorf("horizontal: got %g, want 3", x)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1) || !NearlyEqual(0, 0) {
		t.Error("equal values reported as different")
	}
	if !NearlyEqual(1000, 1000.0001) {
		t.Error("values one ulp apart reported as different")
	}
	if NearlyEqual(1, 1.001) {
		t.Error("clearly different values reported as equal")
	}
	if NearlyEqual(0, 1e-30) {
		t.Error("zero is only nearly equal to itself")
	}
	if !NearlyEqualPoints(Pt(100, 200), Pt(100.00001, 200)) {
		t.Error("nearly equal points reported as different")
	}
}
