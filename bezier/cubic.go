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
	"github.com/chewxy/math32"
)

// CubicSegment is a cubic Bézier curve.
type CubicSegment struct {
	From, Ctrl1, Ctrl2, To Point
}

// Sample returns the point at parameter t.
func (c CubicSegment) Sample(t float32) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Point{
		X: a*c.From.X + b*c.Ctrl1.X + d*c.Ctrl2.X + e*c.To.X,
		Y: a*c.From.Y + b*c.Ctrl1.Y + d*c.Ctrl2.Y + e*c.To.Y,
	}
}

// Derivative returns the tangent vector at parameter t.
func (c CubicSegment) Derivative(t float32) Vector {
	u := 1 - t
	d0 := c.Ctrl1.Sub(c.From).Mul(3 * u * u)
	d1 := c.Ctrl2.Sub(c.Ctrl1).Mul(6 * u * t)
	d2 := c.To.Sub(c.Ctrl2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Split divides the curve at t into two curves, using de Casteljau's
// algorithm.
func (c CubicSegment) Split(t float32) (CubicSegment, CubicSegment) {
	a := c.From.Lerp(c.Ctrl1, t)
	b := c.Ctrl1.Lerp(c.Ctrl2, t)
	d := c.Ctrl2.Lerp(c.To, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	mid := ab.Lerp(bd, t)
	return CubicSegment{From: c.From, Ctrl1: a, Ctrl2: ab, To: mid},
		CubicSegment{From: mid, Ctrl1: bd, Ctrl2: d, To: c.To}
}

// BeforeSplit returns the part of the curve for parameters in [0, t].
func (c CubicSegment) BeforeSplit(t float32) CubicSegment {
	first, _ := c.Split(t)
	return first
}

// AfterSplit returns the part of the curve for parameters in [t, 1].
// The end point of the result is exactly c.To.
func (c CubicSegment) AfterSplit(t float32) CubicSegment {
	_, second := c.Split(t)
	return second
}

// SplitRange returns the part of the curve for parameters in [t0, t1].
func (c CubicSegment) SplitRange(t0, t1 float32) CubicSegment {
	from := c.Sample(t0)
	to := c.Sample(t1)
	d := QuadraticSegment{
		From: Point(c.Ctrl1.Sub(c.From)),
		Ctrl: Point(c.Ctrl2.Sub(c.Ctrl1)),
		To:   Point(c.To.Sub(c.Ctrl2)),
	}
	dt := t1 - t0
	return CubicSegment{
		From:  from,
		Ctrl1: from.Add(d.Sample(t0).ToVector().Mul(dt)),
		Ctrl2: to.Add(d.Sample(t1).ToVector().Mul(-dt)),
		To:    to,
	}
}

// Baseline returns the straight segment from c.From to c.To.
func (c CubicSegment) Baseline() LineSegment {
	return LineSegment{From: c.From, To: c.To}
}

// IsFinite reports whether all control points are finite.
func (c CubicSegment) IsFinite() bool {
	return c.From.IsFinite() && c.Ctrl1.IsFinite() && c.Ctrl2.IsFinite() && c.To.IsFinite()
}

// InflectionPoints returns the parameters in [0, 1) at which the curvature
// of the curve changes sign, in increasing order. Only the first n entries
// of ts are valid.
//
// A straight curve reports a single inflection point at t=0, so that
// flattening treats it as linear throughout. A discriminant which is zero
// up to rounding is reported as a double root, even if curvature only
// touches zero there.
func (c CubicSegment) InflectionPoints() (ts [2]float32, n int) {
	// The inflection points are the roots of cross(B', B'') as a quadratic
	// polynomial in t, written in terms of the control point differences.
	pa := c.Ctrl1.Sub(c.From)
	pb := c.Ctrl2.Sub(c.Ctrl1).Sub(c.Ctrl1.Sub(c.From))
	pc := c.To.Sub(c.Ctrl2).Sub(c.Ctrl2.Sub(c.Ctrl1).Mul(2)).Add(c.Ctrl1.Sub(c.From))

	a := pb.Cross(pc)
	b := pa.Cross(pc)
	cc := pa.Cross(pb)

	la, lb, lc := pa.Length(), pb.Length(), pc.Length()

	add := func(t float32) {
		if t >= 0 && t < 1 {
			ts[n] = t
			n++
		}
	}

	if NearlyZero(a, lb*lc) {
		if NearlyZero(b, la*lc) {
			if NearlyZero(cc, la*lb) {
				add(0)
			}
			return ts, n
		}
		add(-cc / b)
		return ts, n
	}

	disc := b*b - 4*a*cc
	if NearlyZero(disc, b*b+math32.Abs(4*a*cc)) {
		add(-b / (2 * a))
		return ts, n
	}
	if disc < 0 {
		return ts, n
	}

	q := -0.5 * (b + math32.Copysign(math32.Sqrt(disc), b))
	t0 := q / a
	t1 := cc / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	add(t0)
	if t1 != t0 {
		add(t1)
	}
	return ts, n
}

// inflectionRange returns the parameter interval around the inflection
// point t which can be approximated by a single line segment.
//
// The estimate looks along the longer part of the curve, so that an
// inflection at either end still gets a range of positive width.
func (c CubicSegment) inflectionRange(t, tolerance float32) (tMin, tMax float32) {
	if t > 0.5 {
		r := CubicSegment{From: c.To, Ctrl1: c.Ctrl2, Ctrl2: c.Ctrl1, To: c.From}
		lo, hi := r.inflectionRange(1-t, tolerance)
		return 1 - hi, 1 - lo
	}

	sub := c.AfterSplit(t)
	d21 := sub.Ctrl1.Sub(sub.From)
	d41 := sub.To.Sub(sub.From)

	if d21.IsZero() {
		den := math32.Abs(d41.X - d41.Y)
		if den == 0 {
			return -1, 2
		}
		tf := math32.Cbrt(tolerance / den)
		return t - tf, t + tf
	}

	s3 := (d41.X*d21.Y - d41.Y*d21.X) / d21.Length()
	if s3 == 0 {
		return -1, 2
	}
	tf := math32.Cbrt(math32.Abs(tolerance / s3))
	return t - tf*(1-t), t + tf*(1-t)
}

// linearRange returns the clamped inflection range around t, narrowed until
// a single line segment covers it within tolerance. An empty range is
// reported as tMax <= tMin.
func (c CubicSegment) linearRange(t, tolerance float32) (tMin, tMax float32) {
	lo, hi := c.inflectionRange(t, tolerance)
	lo = max(lo, 0)
	hi = min(hi, 1)
	for range 24 {
		if !(hi > lo) || !(c.SplitRange(lo, hi).deviation() > tolerance) {
			return lo, hi
		}
		lo = t - (t-lo)/2
		hi = t + (hi-t)/2
	}
	return t, t
}

// flatteningStep returns how far along the curve a single line segment
// stays within tolerance. The estimate combines the second-order bound of
// Hain et al. with the third-order bound, which dominates when the curve
// starts out almost straight.
func (c CubicSegment) flatteningStep(tolerance float32) float32 {
	v1 := c.Ctrl1.Sub(c.From)
	v2 := c.Ctrl2.Sub(c.From)
	v3 := c.To.Sub(c.From)

	scale := max(v2.SquareLength(), v3.SquareLength())
	if NearlyZero(v1.SquareLength(), scale) {
		// the first control point coincides with the start
		v1, v2 = v2, v3
		if NearlyZero(v1.SquareLength(), scale) {
			return 1
		}
	}

	t := hainStep(v1, v2, tolerance)

	h := v1.Length()
	s3 := v1.Cross(v3)
	if !NearlyZero(s3, h*v3.Length()) {
		t3 := 2 * math32.Cbrt(tolerance*h/math32.Abs(s3))
		t = min(t, t3)
	}
	t = min(t, 1)

	// Both estimates are asymptotic and can overshoot near cusps and
	// loops, so the step is shrunk until the control polygon confirms it.
	for t > minStep {
		piece := c
		if t < snapToEnd {
			piece = c.BeforeSplit(t)
		}
		if !(piece.deviation() > tolerance) {
			break
		}
		t *= 0.8
	}
	return t
}

// deviation returns an upper bound for the distance between the curve and
// its baseline.
func (c CubicSegment) deviation() float32 {
	chord := c.To.Sub(c.From)
	l2 := chord.SquareLength()
	if l2 > 0 {
		d1 := c.Ctrl1.Sub(c.From)
		d2 := c.Ctrl2.Sub(c.From)
		s1 := d1.Dot(chord) / l2
		s2 := d2.Dot(chord) / l2
		if s1 >= 0 && s1 <= 1 && s2 >= 0 && s2 <= 1 {
			// The curve stays between the perpendiculars at both ends and
			// its distance from the chord line is at most 3/4 of the
			// control points' distance.
			l := math32.Sqrt(l2)
			return 0.75 * max(math32.Abs(chord.Cross(d1)), math32.Abs(chord.Cross(d2))) / l
		}
	}
	b := c.Baseline()
	return max(b.distanceTo(c.Ctrl1), b.distanceTo(c.Ctrl2))
}

// hainStep returns the parameter step for which a curve leaving along v1
// and bending towards v2 deviates from its chord by at most tolerance.
func hainStep(v1, v2 Vector, tolerance float32) float32 {
	cross := v2.Cross(v1)
	h := v1.Length()
	if h == 0 || NearlyZero(cross, h*v2.Length()) {
		return 1
	}
	t := 2 * math32.Sqrt(tolerance*h/(3*math32.Abs(cross)))
	return min(t, 1)
}
