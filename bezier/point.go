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

// Package bezier implements single-precision geometry for line segments and
// quadratic and cubic Bézier curves, together with adaptive flattening of
// curves into polylines.
//
// All coordinates are float32. Flattening guarantees that the polyline
// formed by the segment's start point and the emitted points stays within
// the given tolerance of the curve, and that the last emitted point equals
// the segment's end point exactly.
package bezier

import (
	"github.com/chewxy/math32"
)

// Point is a position in the plane.
type Point struct {
	X, Y float32
}

// Vector is a displacement in the plane.
type Vector struct {
	X, Y float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Vec returns the vector (x, y).
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float32) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// ToVector returns the vector from the origin to p.
func (p Point) ToVector() Vector {
	return Vector(p)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// SquareDistance returns the squared Euclidean distance between p and q.
func (p Point) SquareDistance(q Point) float32 {
	return p.Sub(q).SquareLength()
}

// Add returns the sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the cross product v × w.
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// SquareLength returns the squared length of v.
func (v Vector) SquareLength() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
