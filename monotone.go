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

	"seehuhn.de/go/tessellate/bezier"
)

// side tells whether a vertex lies on the left or the right boundary of a
// monotone polygon.
type side uint8

const (
	left side = iota
	right
)

func (s side) opposite() side {
	return 1 - s
}

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

type monotoneVertex struct {
	pos  bezier.Point
	id   VertexID
	side side
}

type triangle [3]VertexID

// basicMonotone triangulates a y-monotone polygon whose vertices are
// supplied in sweep order, using the classic stack algorithm. Triangles are
// buffered until flush is called.
type basicMonotone struct {
	stack     []monotoneVertex
	previous  monotoneVertex
	triangles []triangle
}

func (t *basicMonotone) begin(pos bezier.Point, id VertexID) {
	first := monotoneVertex{pos: pos, id: id, side: left}
	t.previous = first
	t.triangles = t.triangles[:0]
	t.stack = append(t.stack[:0], first)
}

func (t *basicMonotone) vertex(pos bezier.Point, id VertexID, s side) {
	t.monotoneVertex(monotoneVertex{pos: pos, id: id, side: s})
}

func (t *basicMonotone) monotoneVertex(current monotoneVertex) {
	if debugChecks {
		if current.pos.Y < t.previous.pos.Y {
			panic(fmt.Sprintf("monotone vertex %v above previous vertex %v", current.pos, t.previous.pos))
		}
		if !current.pos.IsFinite() {
			panic(fmt.Sprintf("monotone vertex %d is not finite", current.id))
		}
	}

	if current.side != t.previous.side {
		// Everything on the stack can see the new vertex.
		for i := range len(t.stack) - 1 {
			a, b := t.stack[i], t.stack[i+1]
			if turn(b.pos, a.pos, current.pos) < 0 {
				a, b = b, a
			}
			t.pushTriangle(a.id, b.id, current.id)
		}
		t.stack = append(t.stack[:0], t.previous)
	} else {
		lastPopped := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		for len(t.stack) > 0 {
			a, b := lastPopped, t.stack[len(t.stack)-1]
			if current.side == right {
				a, b = b, a
			}
			if turn(b.pos, current.pos, a.pos) < 0 {
				break
			}
			t.pushTriangle(b.id, a.id, current.id)
			lastPopped = t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
		}
		t.stack = append(t.stack, lastPopped)
	}

	t.stack = append(t.stack, current)
	t.previous = current
}

// end adds the bottom vertex of the polygon.
func (t *basicMonotone) end(pos bezier.Point, id VertexID) {
	t.vertex(pos, id, t.previous.side.opposite())
	t.stack = t.stack[:0]
}

func (t *basicMonotone) pushTriangle(a, b, c VertexID) {
	if debugChecks && (a == b || b == c || a == c) {
		panic(fmt.Sprintf("degenerate triangle (%d, %d, %d)", a, b, c))
	}
	t.triangles = append(t.triangles, triangle{a, b, c})
}

func (t *basicMonotone) flush(out FillGeometryBuilder) {
	for _, tri := range t.triangles {
		out.AddTriangle(tri[0], tri[1], tri[2])
	}
	t.triangles = t.triangles[:0]
}

// sideEvents collects a convex chain of vertices on one side of a monotone
// polygon, which can be triangulated without looking at the other side.
type sideEvents struct {
	// refPoint.x is the x coordinate of the chain closest to the centre of
	// the polygon. A previous chain on this side can still interfere with
	// the current chain on the other side, so conservativeRefX is only
	// relaxed to refPoint.X once the opposite side has been flushed.
	refPoint         bezier.Point
	conservativeRefX float32

	events []VertexID
	prev   bezier.Point
	last   monotoneVertex
}

func (s *sideEvents) push(v monotoneVertex) {
	s.events = append(s.events, v.id)
	s.prev = s.last.pos
	s.last = v
}

// monotoneTessellator triangulates a y-monotone polygon like basicMonotone
// does, but it avoids long thin fans: convex runs of vertices on one side
// are collected and triangulated by pairing vertices at doubling distances,
// and only the run's last vertex is passed on to the stack algorithm.
type monotoneTessellator struct {
	tess  basicMonotone
	left  sideEvents
	right sideEvents
}

func (t *monotoneTessellator) begin(pos bezier.Point, id VertexID) {
	t.tess.begin(pos, id)
	for _, s := range []*sideEvents{&t.left, &t.right} {
		s.refPoint = pos
		s.conservativeRefX = pos.X
		s.prev = pos
		s.events = s.events[:0]
	}
	t.left.push(monotoneVertex{pos: pos, id: id, side: left})
	t.right.push(monotoneVertex{pos: pos, id: id, side: right})
}

func (t *monotoneTessellator) vertex(pos bezier.Point, id VertexID, s side) {
	var cur, opp *sideEvents
	if s == left {
		t.left.refPoint.X = max(t.left.refPoint.X, pos.X)
		t.left.conservativeRefX = max(t.left.conservativeRefX, t.left.refPoint.X)
		cur, opp = &t.left, &t.right
	} else {
		t.right.refPoint.X = min(t.right.refPoint.X, pos.X)
		t.right.conservativeRefX = min(t.right.conservativeRefX, t.right.refPoint.X)
		cur, opp = &t.right, &t.left
	}

	dx := t.right.conservativeRefX - t.left.conservativeRefX
	dy := pos.Y - cur.refPoint.Y
	sidesAreClose := dx < dy*0.1

	outwardTurn := false
	if !sidesAreClose && len(cur.events) >= 2 {
		sign := float32(1)
		if s == right {
			sign = -1
		}
		last := cur.last.pos
		outwardTurn = turn(last, cur.prev, pos)*float64(sign) < 0
	}

	if outwardTurn || sidesAreClose {
		// Vertices must reach the stack algorithm in sweep order, so
		// the other side goes first if its chain ends higher up.
		if isAfter(cur.last.pos, opp.last.pos) {
			if v, ok := t.flushSide(opp, s.opposite()); ok {
				t.tess.monotoneVertex(v)
				cur.conservativeRefX = cur.refPoint.X
			}
		}
		if v, ok := t.flushSide(cur, s); ok {
			t.tess.monotoneVertex(v)
			opp.conservativeRefX = opp.refPoint.X
		}
	}

	cur.push(monotoneVertex{pos: pos, id: id, side: s})
}

func (t *monotoneTessellator) end(pos bezier.Point, id VertexID) {
	a, okA := t.flushSide(&t.left, left)
	b, okB := t.flushSide(&t.right, right)
	switch {
	case okA && okB:
		if isAfter(a.pos, b.pos) {
			a, b = b, a
		}
		t.tess.monotoneVertex(a)
		t.tess.monotoneVertex(b)
	case okA:
		t.tess.monotoneVertex(a)
	case okB:
		t.tess.monotoneVertex(b)
	}
	t.tess.end(pos, id)
}

func (t *monotoneTessellator) flush(out FillGeometryBuilder) {
	t.tess.flush(out)
}

// flushSide triangulates the chain of s and resets it to its last vertex,
// which is returned. The chain is fanned by connecting vertices at
// distances 1, 2, 4, ..., which keeps the triangles well shaped.
func (t *monotoneTessellator) flushSide(s *sideEvents, sd side) (monotoneVertex, bool) {
	n := len(s.events)
	if n < 2 {
		return monotoneVertex{}, false
	}

	for step := 1; step*2 < n; step *= 2 {
		lastIndex := 0
		for i := range (n - 1) / (2 * step) {
			a := i * 2 * step
			b := a + step
			lastIndex = b + step
			if sd == right {
				a, b = b, a
			}
			t.tess.pushTriangle(s.events[a], s.events[b], s.events[lastIndex])
		}
		if lastIndex+step < n {
			b, c := lastIndex, lastIndex+step
			if sd == right {
				b, c = c, b
			}
			t.tess.pushTriangle(s.events[0], s.events[b], s.events[c])
		}
	}

	s.events = s.events[:0]
	s.push(s.last)
	s.refPoint = s.last.pos
	return s.last, true
}

// turn returns the cross product of a-o and b-o, computed in double
// precision so that it does not overflow for large coordinates.
func turn(o, a, b bezier.Point) float64 {
	ax, ay := float64(a.X)-float64(o.X), float64(a.Y)-float64(o.Y)
	bx, by := float64(b.X)-float64(o.X), float64(b.Y)-float64(o.Y)
	return ax*by - ay*bx
}
