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
	"iter"

	"github.com/chewxy/math32"
)

// Default values for flattening.
const (
	// DefaultTolerance is used when a flattening call receives a tolerance
	// which is not a positive, finite number.
	DefaultTolerance = 0.1

	// snapToEnd is the step size beyond which the remaining curve is
	// covered by a single final segment. This avoids emitting a last point
	// very close to the end point because of rounding.
	snapToEnd = 0.995

	// minStep keeps the flattener moving forward when the curvature
	// estimate becomes extreme.
	minStep = 1e-3
)

// Flattener produces the points of a flattened curve one at a time.
// The start point of the curve is not produced; the last point produced is
// the curve's end point.
type Flattener interface {
	Next() (Point, bool)
}

// QuadraticFlattener is the pull iterator returned by
// [QuadraticSegment.Flattened].
type QuadraticFlattener struct {
	rest      QuadraticSegment
	tolerance float32
	done      bool
}

// Flattened returns an iterator over the points of a polyline which
// approximates q within tolerance.
func (q QuadraticSegment) Flattened(tolerance float32) QuadraticFlattener {
	return QuadraticFlattener{rest: q, tolerance: sanitizeTolerance(tolerance)}
}

// Next returns the next point of the polyline. The second return value is
// false once the end of the curve has been reached.
func (f *QuadraticFlattener) Next() (Point, bool) {
	if f.done {
		return Point{}, false
	}
	t := clampStep(f.rest.flatteningStep(f.tolerance))
	if t >= snapToEnd {
		f.done = true
		return f.rest.To, true
	}
	f.rest = f.rest.AfterSplit(t)
	return f.rest.From, true
}

// ForEachFlattened calls fn for each point of a polyline which approximates
// q within tolerance, in order. The start point q.From is not included and
// the last point is exactly q.To.
func (q QuadraticSegment) ForEachFlattened(tolerance float32, fn func(Point)) {
	f := q.Flattened(tolerance)
	for p, ok := f.Next(); ok; p, ok = f.Next() {
		fn(p)
	}
}

// ForEachFlattenedLine calls fn for each line segment of the flattened
// curve, starting at q.From.
func (q QuadraticSegment) ForEachFlattenedLine(tolerance float32, fn func(LineSegment)) {
	from := q.From
	q.ForEachFlattened(tolerance, func(to Point) {
		fn(LineSegment{From: from, To: to})
		from = to
	})
}

// Points returns the flattened curve as a sequence. Each iteration over the
// sequence starts again at the beginning of the curve.
func (q QuadraticSegment) Points(tolerance float32) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		f := q.Flattened(tolerance)
		for p, ok := f.Next(); ok; p, ok = f.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// CubicFlattener is the pull iterator returned by [CubicSegment.Flattened].
//
// The curve is divided into linear ranges around inflection points, which
// are each covered by a single line segment, and smooth pieces in between,
// which are subdivided adaptively.
type CubicFlattener struct {
	curve     CubicSegment
	tolerance float32

	ranges  [2][2]float32 // linear ranges, sorted and disjoint
	nRanges int
	next    int // index of the next linear range

	pos      float32 // parameter reached on curve
	rest     CubicSegment
	pieceEnd float32 // end of the smooth piece being subdivided
	inPiece  bool
	done     bool
}

// Flattened returns an iterator over the points of a polyline which
// approximates c within tolerance.
func (c CubicSegment) Flattened(tolerance float32) CubicFlattener {
	f := CubicFlattener{curve: c, tolerance: sanitizeTolerance(tolerance)}

	ts, n := c.InflectionPoints()
	var ranges [2][2]float32
	for i := range n {
		lo, hi := c.linearRange(ts[i], f.tolerance)
		if math32.IsNaN(lo) || math32.IsNaN(hi) || hi <= lo {
			continue
		}
		ranges[f.nRanges] = [2]float32{lo, hi}
		f.nRanges++
	}
	if f.nRanges == 2 {
		if ranges[1][0] < ranges[0][0] {
			ranges[0], ranges[1] = ranges[1], ranges[0]
		}
		if ranges[1][0] <= ranges[0][1] {
			// Overlapping ranges around a sharp turn are only merged if
			// one segment still covers both. Otherwise the turn is kept
			// by ending the first range where the second one starts.
			hi := max(ranges[0][1], ranges[1][1])
			if c.SplitRange(ranges[0][0], hi).deviation() <= f.tolerance {
				ranges[0][1] = hi
				f.nRanges = 1
			} else {
				ranges[1][0] = ranges[0][1]
			}
		}
	}
	f.ranges = ranges
	return f
}

// Next returns the next point of the polyline. The second return value is
// false once the end of the curve has been reached.
func (f *CubicFlattener) Next() (Point, bool) {
	for !f.done {
		if f.inPiece {
			t := clampStep(f.rest.flatteningStep(f.tolerance))
			if t >= snapToEnd {
				f.inPiece = false
				f.pos = f.pieceEnd
				if f.pos >= 1 {
					f.done = true
				}
				return f.rest.To, true
			}
			f.rest = f.rest.AfterSplit(t)
			return f.rest.From, true
		}

		if f.pos >= 1 {
			f.done = true
			break
		}

		if f.next < f.nRanges && f.ranges[f.next][0] <= f.pos {
			// a linear range around an inflection point
			end := f.ranges[f.next][1]
			f.next++
			if end <= f.pos {
				continue
			}
			if f.curve.SplitRange(f.pos, end).deviation() > f.tolerance {
				// what remains of a trimmed range is subdivided instead
				f.startPiece(end)
				continue
			}
			f.pos = end
			if end >= 1 {
				f.done = true
				return f.curve.To, true
			}
			return f.curve.Sample(end), true
		}

		end := float32(1)
		if f.next < f.nRanges {
			end = f.ranges[f.next][0]
		}
		f.startPiece(end)
	}
	return Point{}, false
}

// startPiece prepares the adaptive subdivision of the curve between the
// current position and end.
func (f *CubicFlattener) startPiece(end float32) {
	f.pieceEnd = end
	f.inPiece = true
	switch {
	case f.pos == 0 && end >= 1:
		f.rest = f.curve
	case end >= 1:
		f.rest = f.curve.AfterSplit(f.pos)
	default:
		f.rest = f.curve.SplitRange(f.pos, end)
	}
}

// ForEachFlattened calls fn for each point of a polyline which approximates
// c within tolerance, in order. The start point c.From is not included and
// the last point is exactly c.To.
func (c CubicSegment) ForEachFlattened(tolerance float32, fn func(Point)) {
	f := c.Flattened(tolerance)
	for p, ok := f.Next(); ok; p, ok = f.Next() {
		fn(p)
	}
}

// ForEachFlattenedLine calls fn for each line segment of the flattened
// curve, starting at c.From.
func (c CubicSegment) ForEachFlattenedLine(tolerance float32, fn func(LineSegment)) {
	from := c.From
	c.ForEachFlattened(tolerance, func(to Point) {
		fn(LineSegment{From: from, To: to})
		from = to
	})
}

// Points returns the flattened curve as a sequence. Each iteration over the
// sequence starts again at the beginning of the curve.
func (c CubicSegment) Points(tolerance float32) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		f := c.Flattened(tolerance)
		for p, ok := f.Next(); ok; p, ok = f.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Polyline collects the flattened curve, including its start point, into
// dst and returns the extended slice.
func Polyline(dst []Point, from Point, f Flattener) []Point {
	dst = append(dst, from)
	for p, ok := f.Next(); ok; p, ok = f.Next() {
		dst = append(dst, p)
	}
	return dst
}

func sanitizeTolerance(tolerance float32) float32 {
	if !(tolerance > 0) || math32.IsInf(tolerance, 1) {
		return DefaultTolerance
	}
	return tolerance
}

func clampStep(t float32) float32 {
	if math32.IsNaN(t) {
		return 1
	}
	return max(t, minStep)
}
