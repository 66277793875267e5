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
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/chewxy/math32"
)

var testCubics = map[string]CubicSegment{
	"quarter":   {From: Pt(100, 0), Ctrl1: Pt(100, 55.22848), Ctrl2: Pt(55.22848, 100), To: Pt(0, 100)},
	"arch":      {From: Pt(10, 50), Ctrl1: Pt(20, 10), Ctrl2: Pt(44, 10), To: Pt(54, 50)},
	"s-curve":   {From: Pt(0, 0), Ctrl1: Pt(10, 10), Ctrl2: Pt(20, -10), To: Pt(30, 0)},
	"two-infl":  {From: Pt(0, 0), Ctrl1: Pt(-30, 30), Ctrl2: Pt(-30, 20), To: Pt(40, 0)},
	"end-infl":  {From: Pt(0, 0), Ctrl1: Pt(10, 30), Ctrl2: Pt(30, -30), To: Pt(20, 0)},
	"loop":      {From: Pt(0, 0), Ctrl1: Pt(100, 100), Ctrl2: Pt(0, 100), To: Pt(100, 0)},
	"cusp":      {From: Pt(0, 0), Ctrl1: Pt(0, 0), Ctrl2: Pt(50, 0), To: Pt(50, 50)},
	"straight":  {From: Pt(0, 0), Ctrl1: Pt(1, 1), Ctrl2: Pt(2, 2), To: Pt(3, 3)},
	"collapsed": {From: Pt(7, 7), Ctrl1: Pt(7, 7), Ctrl2: Pt(7, 7), To: Pt(7, 7)},

	// two overlapping inflection ranges around a sharp turn
	"hairpin": {From: Pt(56.10, 61.24), Ctrl1: Pt(37.37, 19.49), Ctrl2: Pt(41.13, 17.21), To: Pt(61.92, 96.31)},
}

var testQuadratics = map[string]QuadraticSegment{
	"arch":      {From: Pt(10, 50), Ctrl: Pt(32, 10), To: Pt(54, 50)},
	"deep":      {From: Pt(0, 0), Ctrl: Pt(50, 100), To: Pt(100, 0)},
	"flat":      {From: Pt(0, 0), Ctrl: Pt(0, 0), To: Pt(10, 10)},
	"collapsed": {From: Pt(1, 2), Ctrl: Pt(1, 2), To: Pt(1, 2)},
	"overshoot": {From: Pt(8163, 4025), Ctrl: Pt(1470, 9043), To: Pt(3271, 7694)},
	"narrow":    {From: Pt(0, 0), Ctrl: Pt(100, 100), To: Pt(0, 1)},
	"collinear": {From: Pt(0, 0), Ctrl: Pt(10, 0), To: Pt(5, 0)},
}

var testTolerances = []float32{0.5, 0.1, 0.01}

// maxDeviation samples the curve densely and returns the largest distance
// from a sample to the polyline.
func maxDeviation(sample func(float32) Point, poly []Point) float32 {
	var worst float32
	for k := range 501 {
		p := sample(float32(k) / 500)
		best := float32(math32.MaxFloat32)
		for i := 1; i < len(poly); i++ {
			best = min(best, LineSegment{From: poly[i-1], To: poly[i]}.distanceTo(p))
		}
		if len(poly) == 1 {
			best = p.Sub(poly[0]).Length()
		}
		worst = max(worst, best)
	}
	return worst
}

func TestCubicFlattenTolerance(t *testing.T) {
	for name, c := range testCubics {
		for _, tol := range testTolerances {
			f := c.Flattened(tol)
			poly := Polyline(nil, c.From, &f)
			d := maxDeviation(c.Sample, poly)
			if d > tol*1.02+1e-3 {
				t.Errorf("%s, tolerance %g: deviation %g with %d points",
					name, tol, d, len(poly))
			}
		}
	}
}

func TestQuadraticFlattenTolerance(t *testing.T) {
	for name, q := range testQuadratics {
		for _, tol := range testTolerances {
			f := q.Flattened(tol)
			poly := Polyline(nil, q.From, &f)
			d := maxDeviation(q.Sample, poly)
			if d > tol*1.02+1e-3 {
				t.Errorf("%s, tolerance %g: deviation %g with %d points",
					name, tol, d, len(poly))
			}
		}
	}
}

// TestFlattenToleranceRandom checks the tolerance bound for random curves
// over a range of scales and tolerances.
func TestFlattenToleranceRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	randPoint := func(scale float32) Point {
		return Pt(rng.Float32()*scale, rng.Float32()*scale)
	}

	type config struct {
		scale, tol float32
	}
	configs := []config{
		{1, 0.01},
		{100, 0.5},
		{100, 0.05},
		{10000, 0.5},
	}
	for _, cfg := range configs {
		t.Run(fmt.Sprintf("scale%g_tol%g", cfg.scale, cfg.tol), func(t *testing.T) {
			limit := 1.2 * cfg.tol
			for i := range 200 {
				c := CubicSegment{
					From:  randPoint(cfg.scale),
					Ctrl1: randPoint(cfg.scale),
					Ctrl2: randPoint(cfg.scale),
					To:    randPoint(cfg.scale),
				}
				f := c.Flattened(cfg.tol)
				poly := Polyline(nil, c.From, &f)
				if d := maxDeviation(c.Sample, poly); d > limit {
					t.Errorf("cubic %d %v: deviation %g", i, c, d)
				}

				q := QuadraticSegment{From: c.From, Ctrl: c.Ctrl1, To: c.To}
				g := q.Flattened(cfg.tol)
				poly = Polyline(poly[:0], q.From, &g)
				if d := maxDeviation(q.Sample, poly); d > limit {
					t.Errorf("quadratic %d %v: deviation %g", i, q, d)
				}
			}
		})
	}
}

func TestFlattenEndPoint(t *testing.T) {
	for name, c := range testCubics {
		for _, tol := range testTolerances {
			pts := slices.Collect(c.Points(tol))
			if len(pts) == 0 || pts[len(pts)-1] != c.To {
				t.Errorf("cubic %s, tolerance %g: does not end at %v", name, tol, c.To)
			}
			for i, p := range pts {
				if !p.IsFinite() {
					t.Errorf("cubic %s: point %d is %v", name, i, p)
				}
			}
		}
	}
	for name, q := range testQuadratics {
		for _, tol := range testTolerances {
			pts := slices.Collect(q.Points(tol))
			if len(pts) == 0 || pts[len(pts)-1] != q.To {
				t.Errorf("quadratic %s, tolerance %g: does not end at %v", name, tol, q.To)
			}
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	for _, name := range []string{"straight", "collapsed"} {
		c := testCubics[name]
		pts := slices.Collect(c.Points(0.1))
		if len(pts) != 1 || pts[0] != c.To {
			t.Errorf("cubic %s: got %v, want [%v]", name, pts, c.To)
		}
	}
	for _, name := range []string{"flat", "collapsed"} {
		q := testQuadratics[name]
		pts := slices.Collect(q.Points(0.1))
		if len(pts) != 1 || pts[0] != q.To {
			t.Errorf("quadratic %s: got %v, want [%v]", name, pts, q.To)
		}
	}
}

// TestFlattenForms checks that the callback, pull-iterator, sequence and
// line forms of flattening produce the same points.
func TestFlattenForms(t *testing.T) {
	for name, c := range testCubics {
		var cb []Point
		c.ForEachFlattened(0.1, func(p Point) { cb = append(cb, p) })

		f := c.Flattened(0.1)
		var pull []Point
		for p, ok := f.Next(); ok; p, ok = f.Next() {
			pull = append(pull, p)
		}
		if _, ok := f.Next(); ok {
			t.Errorf("%s: exhausted iterator produced another point", name)
		}

		seq := slices.Collect(c.Points(0.1))

		var lines []Point
		from := c.From
		c.ForEachFlattenedLine(0.1, func(l LineSegment) {
			if l.From != from {
				t.Errorf("%s: line starts at %v, want %v", name, l.From, from)
			}
			lines = append(lines, l.To)
			from = l.To
		})

		if !slices.Equal(cb, pull) || !slices.Equal(cb, seq) || !slices.Equal(cb, lines) {
			t.Errorf("%s: flattening forms disagree:\n%v\n%v\n%v\n%v", name, cb, pull, seq, lines)
		}
	}
}

func TestPointsRestart(t *testing.T) {
	c := testCubics["quarter"]
	seq := c.Points(0.1)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("second iteration differs from the first")
	}

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early exit after %d points", n)
	}
}

func TestInvalidTolerance(t *testing.T) {
	c := testCubics["arch"]
	want := slices.Collect(c.Points(DefaultTolerance))
	for _, tol := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		got := slices.Collect(c.Points(tol))
		if !slices.Equal(got, want) {
			t.Errorf("tolerance %g: got %d points, want %d", tol, len(got), len(want))
		}
	}
}

func TestFinerToleranceMorePoints(t *testing.T) {
	c := testCubics["quarter"]
	prev := 0
	for _, tol := range testTolerances {
		n := len(slices.Collect(c.Points(tol)))
		if n <= prev {
			t.Errorf("tolerance %g: %d points, not more than %d", tol, n, prev)
		}
		prev = n
	}
}

func BenchmarkCubicFlatten(b *testing.B) {
	c := testCubics["two-infl"]
	for b.Loop() {
		c.ForEachFlattened(0.01, func(Point) {})
	}
}
