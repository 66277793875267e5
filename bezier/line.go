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
	"seehuhn.de/go/geom/vec"
)

// LineSegment is a straight line from From to To.
type LineSegment struct {
	From, To Point
}

// Sample returns the point at parameter t.
func (l LineSegment) Sample(t float32) Point {
	return l.From.Lerp(l.To, t)
}

// Vector returns To - From.
func (l LineSegment) Vector() Vector {
	return l.To.Sub(l.From)
}

// SolveTForY returns the parameter at which the segment reaches height y.
// Horizontal segments return 0.
func (l LineSegment) SolveTForY(y float32) float32 {
	dy := l.To.Y - l.From.Y
	if dy == 0 {
		return 0
	}
	return (y - l.From.Y) / dy
}

// SolveXForY returns the x coordinate of the segment's line at height y.
func (l LineSegment) SolveXForY(y float32) float32 {
	t := l.SolveTForY(y)
	return l.From.X*(1-t) + l.To.X*t
}

// distanceTo returns the distance from p to the closest point of the
// segment.
func (l LineSegment) distanceTo(p Point) float32 {
	v := l.Vector()
	l2 := v.SquareLength()
	if l2 == 0 {
		return p.Sub(l.From).Length()
	}
	t := min(max(p.Sub(l.From).Dot(v)/l2, 0), 1)
	return p.Sub(l.Sample(t)).Length()
}

// IntersectionT returns the parameters at which l and other intersect.
// The computation is carried out in double precision. Segments which share
// an endpoint, and parallel segments, are reported as not intersecting.
func (l LineSegment) IntersectionT(other LineSegment) (ta, tb float64, ok bool) {
	if l.To == other.To || l.From == other.From || l.From == other.To || l.To == other.From {
		return 0, 0, false
	}

	a0, a1 := toVec2(l.From), toVec2(l.To)
	b0, b1 := toVec2(other.From), toVec2(other.To)

	v1 := a1.Sub(a0)
	v2 := b1.Sub(b0)
	den := cross64(v1, v2)
	if den == 0 {
		return 0, 0, false
	}

	// Postpone the division by den to keep precision; only its sign is
	// needed for the range checks.
	sign := 1.0
	if den < 0 {
		sign = -1
		den = -den
	}
	v3 := b0.Sub(a0)
	t := cross64(v3, v2) * sign
	u := cross64(v3, v1) * sign
	if t < 0 || t > den || u < 0 || u > den {
		return 0, 0, false
	}
	return t / den, u / den, true
}

// Sample64 evaluates the segment at t in double precision and rounds the
// result to single precision.
func (l LineSegment) Sample64(t float64) Point {
	a, b := toVec2(l.From), toVec2(l.To)
	p := a.Add(b.Sub(a).Mul(t))
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

func toVec2(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func cross64(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
