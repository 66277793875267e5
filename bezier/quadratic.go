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

// QuadraticSegment is a quadratic Bézier curve.
type QuadraticSegment struct {
	From, Ctrl, To Point
}

// Sample returns the point at parameter t.
func (q QuadraticSegment) Sample(t float32) Point {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Point{
		X: a*q.From.X + b*q.Ctrl.X + c*q.To.X,
		Y: a*q.From.Y + b*q.Ctrl.Y + c*q.To.Y,
	}
}

// Derivative returns the tangent vector at parameter t.
func (q QuadraticSegment) Derivative(t float32) Vector {
	u := 1 - t
	d0 := q.Ctrl.Sub(q.From).Mul(2 * u)
	d1 := q.To.Sub(q.Ctrl).Mul(2 * t)
	return d0.Add(d1)
}

// Split divides the curve at t into two curves.
func (q QuadraticSegment) Split(t float32) (QuadraticSegment, QuadraticSegment) {
	mid := q.Sample(t)
	return QuadraticSegment{From: q.From, Ctrl: q.From.Lerp(q.Ctrl, t), To: mid},
		QuadraticSegment{From: mid, Ctrl: q.Ctrl.Lerp(q.To, t), To: q.To}
}

// BeforeSplit returns the part of the curve for parameters in [0, t].
func (q QuadraticSegment) BeforeSplit(t float32) QuadraticSegment {
	return QuadraticSegment{From: q.From, Ctrl: q.From.Lerp(q.Ctrl, t), To: q.Sample(t)}
}

// AfterSplit returns the part of the curve for parameters in [t, 1].
// The end point of the result is exactly q.To.
func (q QuadraticSegment) AfterSplit(t float32) QuadraticSegment {
	return QuadraticSegment{From: q.Sample(t), Ctrl: q.Ctrl.Lerp(q.To, t), To: q.To}
}

// SplitRange returns the part of the curve for parameters in [t0, t1].
func (q QuadraticSegment) SplitRange(t0, t1 float32) QuadraticSegment {
	from := q.Sample(t0)
	to := q.Sample(t1)
	d := q.Ctrl.Sub(q.From).Mul(1 - t0).Add(q.To.Sub(q.Ctrl).Mul(t0))
	return QuadraticSegment{From: from, Ctrl: from.Add(d.Mul(t1 - t0)), To: to}
}

// ToCubic returns the same curve as a cubic Bézier segment.
func (q QuadraticSegment) ToCubic() CubicSegment {
	return CubicSegment{
		From:  q.From,
		Ctrl1: q.From.Lerp(q.Ctrl, 2.0/3.0),
		Ctrl2: q.To.Lerp(q.Ctrl, 2.0/3.0),
		To:    q.To,
	}
}

// Baseline returns the straight segment from q.From to q.To.
func (q QuadraticSegment) Baseline() LineSegment {
	return LineSegment{From: q.From, To: q.To}
}

// IsFinite reports whether all control points are finite.
func (q QuadraticSegment) IsFinite() bool {
	return q.From.IsFinite() && q.Ctrl.IsFinite() && q.To.IsFinite()
}

// flatteningStep returns how far along the curve a single line segment
// stays within tolerance, following Hain et al.
func (q QuadraticSegment) flatteningStep(tolerance float32) float32 {
	v1 := q.Ctrl.Sub(q.From)
	v2 := q.To.Sub(q.From)
	if NearlyZero(v1.SquareLength(), v2.SquareLength()) {
		// the control point coincides with the start; the curve leaves
		// along the chord
		v1 = v2
	}
	t := hainStep(v1, v2, tolerance)

	// The estimate assumes that the curve bends only slightly over the
	// step. Where it turns back sharply, shrink the step until the
	// control polygon confirms it.
	for t > minStep {
		piece := q
		if t < snapToEnd {
			piece = q.BeforeSplit(t)
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
func (q QuadraticSegment) deviation() float32 {
	return q.ToCubic().deviation()
}
