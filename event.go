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

package tessellate

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/chewxy/math32"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate/bezier"
)

// EventKind identifies the type of a [PathEvent].
type EventKind uint8

// These are the possible values of [EventKind].
const (
	KindBegin EventKind = iota
	KindLine
	KindQuadratic
	KindCubic
	KindEnd
)

func (k EventKind) String() string {
	switch k {
	case KindBegin:
		return "Begin"
	case KindLine:
		return "Line"
	case KindQuadratic:
		return "Quadratic"
	case KindCubic:
		return "Cubic"
	case KindEnd:
		return "End"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// PathEvent is one step of a path description.
//
// Each sub-path starts with a Begin event and is terminated by an End
// event. In between, the segments of the sub-path follow in order, and the
// start point of each segment equals the end point of its predecessor.
//
// The meaning of Points depends on Kind:
//
//	Begin:     [at]
//	Line:      [from, to]
//	Quadratic: [from, ctrl, to]
//	Cubic:     [from, ctrl1, ctrl2, to]
//	End:       [last, first]
//
// Close is only used by End events and records whether the sub-path was
// closed explicitly. Fills always include the closing edge.
type PathEvent struct {
	Kind   EventKind
	Points [4]bezier.Point
	Close  bool
}

// Begin returns the event which starts a sub-path at the given point.
func Begin(at bezier.Point) PathEvent {
	return PathEvent{Kind: KindBegin, Points: [4]bezier.Point{at}}
}

// Line returns a straight segment event.
func Line(from, to bezier.Point) PathEvent {
	return PathEvent{Kind: KindLine, Points: [4]bezier.Point{from, to}}
}

// Quadratic returns a quadratic Bézier segment event.
func Quadratic(from, ctrl, to bezier.Point) PathEvent {
	return PathEvent{Kind: KindQuadratic, Points: [4]bezier.Point{from, ctrl, to}}
}

// Cubic returns a cubic Bézier segment event.
func Cubic(from, ctrl1, ctrl2, to bezier.Point) PathEvent {
	return PathEvent{Kind: KindCubic, Points: [4]bezier.Point{from, ctrl1, ctrl2, to}}
}

// End returns the event which terminates a sub-path. last is the current
// point and first is the start point of the sub-path.
func End(last, first bezier.Point, closePath bool) PathEvent {
	return PathEvent{Kind: KindEnd, Points: [4]bezier.Point{last, first}, Close: closePath}
}

// numPoints returns the number of valid entries in e.Points.
func (e PathEvent) numPoints() int {
	switch e.Kind {
	case KindBegin:
		return 1
	case KindLine, KindEnd:
		return 2
	case KindQuadratic:
		return 3
	default:
		return 4
	}
}

// From returns the start point of a segment, the start point of a Begin
// event, or the last point of an End event.
func (e PathEvent) From() bezier.Point {
	return e.Points[0]
}

// To returns the end point of a segment. For Begin events this is the
// start point, for End events it is the first point of the sub-path.
func (e PathEvent) To() bezier.Point {
	switch e.Kind {
	case KindBegin:
		return e.Points[0]
	case KindEnd:
		return e.Points[1]
	default:
		return e.Points[e.numPoints()-1]
	}
}

// FromPath converts a path from the geom package into path events. The
// transformation m is applied to all coordinates; the zero matrix is
// treated as the identity.
//
// A Close command ends the current sub-path. Drawing commands which follow
// a Close without an intervening MoveTo start a new sub-path at the
// previous start point. Drawing commands before the first MoveTo are
// ignored.
func FromPath(p path.Path, m matrix.Matrix) iter.Seq[PathEvent] {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	transform := func(v vec.Vec2) bezier.Point {
		return bezier.Point{
			X: float32(m[0]*v.X + m[2]*v.Y + m[4]),
			Y: float32(m[1]*v.X + m[3]*v.Y + m[5]),
		}
	}

	return func(yield func(PathEvent) bool) {
		var first, current bezier.Point
		haveCurrent := false // a MoveTo has been seen
		open := false        // a Begin event has been emitted without End

		// beginIfNeeded restarts the sub-path after a Close.
		beginIfNeeded := func() bool {
			if open {
				return true
			}
			open = true
			return yield(Begin(first))
		}

		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				if open {
					open = false
					if !yield(End(current, first, false)) {
						return
					}
				}
				first = transform(pts[0])
				current = first
				haveCurrent = true
				open = true
				if !yield(Begin(first)) {
					return
				}

			case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
				if !haveCurrent {
					Logger().Debug("skipping drawing command without current point",
						slog.Any("cmd", cmd))
					continue
				}
				if !beginIfNeeded() {
					return
				}
				var e PathEvent
				switch cmd {
				case path.CmdLineTo:
					e = Line(current, transform(pts[0]))
				case path.CmdQuadTo:
					e = Quadratic(current, transform(pts[0]), transform(pts[1]))
				default:
					e = Cubic(current, transform(pts[0]), transform(pts[1]), transform(pts[2]))
				}
				current = e.To()
				if !yield(e) {
					return
				}

			case path.CmdClose:
				if !open {
					continue
				}
				open = false
				if !yield(End(current, first, true)) {
					return
				}
				current = first
			}
		}
		if open {
			yield(End(current, first, false))
		}
	}
}

// PolygonEvents returns the path events of a polygon with the given
// vertices. If closePath is true, the End event is marked as closing.
// No events are produced for an empty polygon.
func PolygonEvents(points []bezier.Point, closePath bool) iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		if len(points) == 0 {
			return
		}
		if !yield(Begin(points[0])) {
			return
		}
		for i := 1; i < len(points); i++ {
			if !yield(Line(points[i-1], points[i])) {
				return
			}
		}
		yield(End(points[len(points)-1], points[0], closePath))
	}
}

// rectangleEvents returns the path events of an axis-aligned rectangle.
func rectangleEvents(r rect.Rect) iter.Seq[PathEvent] {
	pts := []bezier.Point{
		{X: float32(r.LLx), Y: float32(r.LLy)},
		{X: float32(r.URx), Y: float32(r.LLy)},
		{X: float32(r.URx), Y: float32(r.URy)},
		{X: float32(r.LLx), Y: float32(r.URy)},
	}
	return PolygonEvents(pts, true)
}

// arcKappa is the distance of the control points from the end points of a
// cubic Bézier curve approximating a quarter circle of radius 1.
const arcKappa = 0.5522847498

// ellipseEvents returns the path events of an ellipse with the given
// center and radii, rotated by the angle rotation (in radians)
// counter-clockwise around its center. The ellipse is made of four cubic
// Bézier curves.
func ellipseEvents(center bezier.Point, radii bezier.Vector, rotation float32) iter.Seq[PathEvent] {
	rx, ry := math32.Abs(radii.X), math32.Abs(radii.Y)
	sin, cos := math32.Sincos(rotation)
	pt := func(x, y float32) bezier.Point {
		x, y = x*rx, y*ry
		return bezier.Point{
			X: center.X + x*cos - y*sin,
			Y: center.Y + x*sin + y*cos,
		}
	}

	const k = arcKappa
	p0, p1, p2, p3 := pt(1, 0), pt(0, 1), pt(-1, 0), pt(0, -1)
	return func(yield func(PathEvent) bool) {
		_ = yield(Begin(p0)) &&
			yield(Cubic(p0, pt(1, k), pt(k, 1), p1)) &&
			yield(Cubic(p1, pt(-k, 1), pt(-1, k), p2)) &&
			yield(Cubic(p2, pt(-1, -k), pt(-k, -1), p3)) &&
			yield(Cubic(p3, pt(k, -1), pt(1, -k), p0)) &&
			yield(End(p0, p0, true))
	}
}
