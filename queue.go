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
	"math"
	"slices"

	"seehuhn.de/go/tessellate/bezier"
)

// eventID indexes the events of an eventQueue.
type eventID = uint32

const invalidEvent eventID = math.MaxUint32

// event is a position visited by the sweep line. Events are kept in a
// singly linked list sorted by position. Events at the same position form
// a second list of siblings, which hangs off the first of them.
type event struct {
	position bezier.Point
	next     eventID // next position in sweep order
	sibling  eventID // next event at the same position
}

// edgeData describes the edge starting at an event. Vertex events have
// isEdge set to false; they make sure the sweep visits a position which
// has no edge below it.
type edgeData struct {
	to      bezier.Point
	winding int16
	isEdge  bool
}

// eventQueue is an arena of events with parallel edge data. The slices
// grow but never shrink, so that a queue can be reused without
// allocations.
type eventQueue struct {
	events []event
	edges  []edgeData
	first  eventID

	snapped map[bezier.Point]bezier.Point
}

func (q *eventQueue) reset() {
	q.events = q.events[:0]
	q.edges = q.edges[:0]
	q.first = invalidEvent
	clear(q.snapped)
}

func (q *eventQueue) push(pos bezier.Point, data edgeData) eventID {
	id := eventID(len(q.events))
	q.events = append(q.events, event{position: pos, next: invalidEvent, sibling: invalidEvent})
	q.edges = append(q.edges, data)
	return id
}

func (q *eventQueue) next(id eventID) eventID {
	return q.events[id].next
}

func (q *eventQueue) nextSibling(id eventID) eventID {
	return q.events[id].sibling
}

func (q *eventQueue) position(id eventID) bezier.Point {
	return q.events[id].position
}

func (q *eventQueue) lastSibling(id eventID) eventID {
	for q.events[id].sibling != invalidEvent {
		id = q.events[id].sibling
	}
	return id
}

// sort links all events into sweep order.
func (q *eventQueue) sort() {
	if len(q.events) == 0 {
		q.first = invalidEvent
		return
	}
	q.first = q.mergeSort(0, len(q.events))
}

// mergeSort sorts the events with indices in [start, end), which are not
// linked yet, and returns the head of the sorted list. The recursion splits
// index ranges of the arena, so no list traversal is needed to find the
// middle.
func (q *eventQueue) mergeSort(start, end int) eventID {
	split := (start + end) / 2
	if split == start {
		return eventID(start)
	}
	a := q.mergeSort(start, split)
	b := q.mergeSort(split, end)
	return q.merge(a, b)
}

// merge combines two sorted lists. Events of b at a position already in a
// are appended to the sibling list of a's event.
func (q *eventQueue) merge(a, b eventID) eventID {
	head, prev := invalidEvent, invalidEvent
	link := func(node eventID) {
		if prev == invalidEvent {
			head = node
		} else {
			q.events[prev].next = node
		}
		prev = node
	}

	for a != invalidEvent && b != invalidEvent {
		switch comparePositions(q.events[a].position, q.events[b].position) {
		case -1:
			node := a
			a = q.events[a].next
			link(node)
		case 1:
			node := b
			b = q.events[b].next
			link(node)
		default:
			q.events[q.lastSibling(a)].sibling = b
			b = q.events[b].next
		}
	}

	rest := a
	if rest == invalidEvent {
		rest = b
	}
	if prev == invalidEvent {
		return rest
	}
	q.events[prev].next = rest
	return head
}

// insertSorted adds an edge event to the sorted queue. The search for the
// insertion point starts at after, which must not be after pos.
func (q *eventQueue) insertSorted(pos bezier.Point, data edgeData, after eventID) eventID {
	if debugChecks && !isAfter(data.to, pos) {
		panic(fmt.Sprintf("inserted edge %v -> %v points upwards", pos, data.to))
	}
	id := q.push(pos, data)
	q.insertIntoSortedList(id, pos, after)
	return id
}

// insertSibling adds an edge event at the position of the event sib.
func (q *eventQueue) insertSibling(sib eventID, pos bezier.Point, data edgeData) {
	id := q.push(pos, data)
	q.events[id].sibling = q.events[sib].sibling
	q.events[sib].sibling = id
}

// vertexEventSorted adds a vertex event to the sorted queue.
func (q *eventQueue) vertexEventSorted(pos bezier.Point, after eventID) {
	id := q.push(pos, edgeData{})
	q.insertIntoSortedList(id, pos, after)
}

func (q *eventQueue) insertIntoSortedList(id eventID, pos bezier.Point, after eventID) {
	prev, current := after, after
	for current != invalidEvent {
		p := q.events[current].position
		if p == pos {
			q.events[id].sibling = q.events[current].sibling
			q.events[current].sibling = id
			return
		}
		if isAfter(p, pos) {
			q.events[prev].next = id
			q.events[id].next = current
			return
		}
		prev = current
		current = q.events[current].next
	}
	q.events[prev].next = id
}

// snapNearlyEqual merges consecutive positions of the sorted queue which
// are equal up to rounding error. All events of such a run move to the
// first position of the run, and edge end points are moved accordingly.
// Edges which collapse to a point become vertex events.
//
// If normals is non-nil, the entries for moved positions are moved along.
func (q *eventQueue) snapNearlyEqual(normals map[bezier.Point]bezier.Vector) {
	for head := q.first; head != invalidEvent; head = q.events[head].next {
		p := q.events[head].position
		cur := q.events[head].next
		for cur != invalidEvent && bezier.NearlyEqualPoints(q.events[cur].position, p) {
			if q.snapped == nil {
				q.snapped = make(map[bezier.Point]bezier.Point)
			}
			q.snapped[q.events[cur].position] = p
			for s := cur; s != invalidEvent; s = q.events[s].sibling {
				q.events[s].position = p
			}
			q.events[q.lastSibling(head)].sibling = cur
			cur = q.events[cur].next
		}
		q.events[head].next = cur
	}
	if len(q.snapped) == 0 {
		return
	}

	for i := range q.edges {
		e := &q.edges[i]
		if !e.isEdge {
			continue
		}
		if to, ok := q.snapped[e.to]; ok {
			e.to = to
		}
		if e.to == q.events[i].position {
			*e = edgeData{}
		}
	}
	for from, to := range q.snapped {
		n, ok := normals[from]
		if !ok {
			continue
		}
		delete(normals, from)
		if _, taken := normals[to]; !taken {
			normals[to] = n
		}
	}
}

// queueBuilder converts path events into the initial event queue. It
// validates the input, flattens curves, and records the vertex events
// needed for local bottom vertices.
//
// Positions are kept in the sweep frame: when the sweep is horizontal,
// input points are rotated before use.
type queueBuilder struct {
	queue      *eventQueue
	tolerance  float32
	horizontal bool

	// Sweep frame state of the current sub-path.
	current bezier.Point // current point
	prev    bezier.Point // point before current, after flattening
	second  bezier.Point // second point of the sub-path
	nth     int          // number of edges in the sub-path

	// Validation state, in input coordinates.
	open       bool
	first      bezier.Point
	last       bezier.Point
	numEvents  int
	withNormal bool

	normals map[bezier.Point]bezier.Vector
	ring    []bezier.Point // flattened points of the sub-path
	tmp     []bezier.Point
}

// build fills q from events. No events are added to q when an error is
// returned.
func (b *queueBuilder) build(q *eventQueue, events iter.Seq[PathEvent], opt *Options) error {
	q.reset()
	b.queue = q
	b.tolerance = opt.Tolerance
	b.horizontal = opt.SweepOrientation == Horizontal
	b.withNormal = opt.WithNormals
	b.open = false
	b.numEvents = 0
	b.nth = 0
	clear(b.normals)
	if b.withNormal && b.normals == nil {
		b.normals = make(map[bezier.Point]bezier.Vector)
	}

	for e := range events {
		if err := b.event(e); err != nil {
			q.reset()
			return fmt.Errorf("path event %d (%s at %v): %w", b.numEvents, e.Kind, e.From(), err)
		}
		b.numEvents++
	}
	if b.numEvents == 0 {
		return ErrEmptyPath
	}
	if b.open {
		q.reset()
		return fmt.Errorf("path event %d: %w", b.numEvents, ErrMissingEnd)
	}

	q.sort()
	var normals map[bezier.Point]bezier.Vector
	if b.withNormal {
		normals = b.normals
	}
	q.snapNearlyEqual(normals)
	return nil
}

func (b *queueBuilder) event(e PathEvent) error {
	for i := range e.numPoints() {
		if !e.Points[i].IsFinite() {
			return ErrNonFinite
		}
	}

	switch e.Kind {
	case KindBegin:
		if b.open {
			return ErrMissingEnd
		}
		b.open = true
		b.first = e.Points[0]
		b.last = b.first
		b.begin(b.orient(b.first))

	case KindLine, KindQuadratic, KindCubic:
		if !b.open {
			return ErrMissingBegin
		}
		if e.Points[0] != b.last {
			return ErrDiscontinuous
		}
		switch e.Kind {
		case KindLine:
			b.lineSegment(b.orient(e.Points[1]))
		case KindQuadratic:
			b.quadraticSegment(b.orient(e.Points[1]), b.orient(e.Points[2]))
		default:
			b.cubicSegment(b.orient(e.Points[1]), b.orient(e.Points[2]), b.orient(e.Points[3]))
		}
		b.last = e.To()

	case KindEnd:
		if !b.open {
			return ErrMissingBegin
		}
		if e.Points[0] != b.last || e.Points[1] != b.first {
			return ErrDiscontinuous
		}
		b.open = false
		b.end(b.orient(b.first))

	default:
		return fmt.Errorf("unknown path event kind %d", e.Kind)
	}
	return nil
}

// orient maps input coordinates to the sweep frame.
func (b *queueBuilder) orient(p bezier.Point) bezier.Point {
	if b.horizontal {
		return bezier.Point{X: -p.Y, Y: p.X}
	}
	return p
}

func (b *queueBuilder) begin(at bezier.Point) {
	b.nth = 0
	b.current = at
	b.ring = append(b.ring[:0], at)
}

func (b *queueBuilder) end(first bezier.Point) {
	if b.nth == 0 {
		return
	}

	b.lineSegment(first)

	// The check for the first vertex was skipped when the sub-path started,
	// since its predecessor was not known then.
	if isAfter(first, b.prev) && isAfter(first, b.second) {
		b.vertexEvent(first)
	}
	b.nth = 0

	if b.withNormal {
		b.addNormals()
	}
}

func (b *queueBuilder) vertexEvent(at bezier.Point) {
	b.queue.push(at, edgeData{})
}

// addEdge adds an edge event, oriented so that the edge points downwards.
func (b *queueBuilder) addEdge(from, to bezier.Point, winding int16) {
	if from == to {
		return
	}
	if isAfter(from, to) {
		from, to = to, from
		winding = -winding
	}
	b.queue.push(from, edgeData{to: to, winding: winding, isEdge: true})
	b.nth++
}

func (b *queueBuilder) lineSegment(to bezier.Point) {
	from := b.current
	if from == to {
		return
	}

	if isAfter(from, to) && b.nth > 0 && isAfter(from, b.prev) {
		b.vertexEvent(from)
	}
	if b.nth == 0 {
		b.second = to
	}
	b.addEdge(from, to, 1)

	b.prev = b.current
	b.current = to
	if b.withNormal {
		b.ring = append(b.ring, to)
	}
}

func (b *queueBuilder) quadraticSegment(ctrl, to bezier.Point) {
	seg := bezier.QuadraticSegment{From: b.current, Ctrl: ctrl, To: to}
	swapped := isAfter(seg.From, seg.To)
	if swapped {
		seg.From, seg.To = seg.To, seg.From
	}
	b.curveSegment(b.current, to, swapped, func(fn func(bezier.LineSegment)) {
		seg.ForEachFlattenedLine(b.tolerance, fn)
	})
}

func (b *queueBuilder) cubicSegment(ctrl1, ctrl2, to bezier.Point) {
	seg := bezier.CubicSegment{From: b.current, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
	swapped := isAfter(seg.From, seg.To)
	if swapped {
		seg.From, seg.To = seg.To, seg.From
		seg.Ctrl1, seg.Ctrl2 = seg.Ctrl2, seg.Ctrl1
	}
	b.curveSegment(b.current, to, swapped, func(fn func(bezier.LineSegment)) {
		seg.ForEachFlattenedLine(b.tolerance, fn)
	})
}

// curveSegment adds the edges of a flattened curve from "from" to "to".
// Curves are always flattened top to bottom, so that two paths sharing a
// curve produce identical edges; swapped reports whether flatten walks the
// curve backwards. The bookkeeping of prev and second refers to the
// original direction.
func (b *queueBuilder) curveSegment(from, to bezier.Point, swapped bool, flatten func(func(bezier.LineSegment))) {
	winding := int16(1)
	if swapped {
		winding = -1
	}

	isFirstEdge := b.nth == 0
	var firstTo, prev bezier.Point
	haveFirst := false
	b.tmp = b.tmp[:0]
	flatten(func(l bezier.LineSegment) {
		if l.From == l.To {
			return
		}
		if !haveFirst {
			// The predecessor of l.From is only known after the loop.
			haveFirst = true
			firstTo = l.To
		} else if isAfter(l.From, l.To) && isAfter(l.From, prev) {
			b.vertexEvent(l.From)
		}
		b.addEdge(l.From, l.To, winding)
		prev = l.From
		if b.withNormal {
			b.tmp = append(b.tmp, l.To)
		}
	})
	if !haveFirst {
		return
	}

	second, previous := firstTo, prev
	if swapped {
		second, previous = prev, firstTo
	}
	if isFirstEdge {
		b.second = second
	} else if isAfter(from, b.prev) && isAfter(from, second) {
		b.vertexEvent(from)
	}
	b.prev = previous
	b.current = to

	if b.withNormal {
		if swapped {
			// tmp ends with the start point of the original curve
			pts := b.tmp[:len(b.tmp)-1]
			slices.Reverse(pts)
			b.ring = append(b.ring, pts...)
			b.ring = append(b.ring, to)
		} else {
			b.ring = append(b.ring, b.tmp...)
		}
	}
}

// addNormals computes the vertex normals of the closed polyline in
// b.ring.
//
// The sweep creates a single vertex per position, so normals are stored by
// position. Where the path passes through a position more than once, the
// normal of the last pass wins.
func (b *queueBuilder) addNormals() {
	ring := b.ring
	for len(ring) > 1 && ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
	}
	n := len(ring)
	if n < 2 {
		return
	}
	for i, p := range ring {
		prev := ring[(i+n-1)%n]
		next := ring[(i+1)%n]
		b.normals[p] = vertexNormal(p.Sub(prev), next.Sub(p))
	}
}

// vertexNormal returns the offset direction at a vertex between the edge
// directions d1 and d2. Moving the vertex by w times the result moves both
// edges by w along their right-hand normals (with the y axis pointing
// down).
func vertexNormal(d1, d2 bezier.Vector) bezier.Vector {
	n1 := bezier.Vector{X: -d1.Y, Y: d1.X}.Normalize()
	n2 := bezier.Vector{X: -d2.Y, Y: d2.X}.Normalize()
	den := 1 + n1.Dot(n2)
	if den < 1e-4 {
		// the path turns back on itself
		return n1
	}
	return n1.Add(n2).Mul(1 / den)
}

// comparePositions orders positions by y, then by x.
func comparePositions(a, b bezier.Point) int {
	switch {
	case a.Y > b.Y:
		return 1
	case a.Y < b.Y:
		return -1
	case a.X > b.X:
		return 1
	case a.X < b.X:
		return -1
	}
	return 0
}

// isAfter reports whether the sweep line reaches a after b.
func isAfter(a, b bezier.Point) bool {
	return a.Y > b.Y || (a.Y == b.Y && a.X > b.X)
}

// isNear reports whether a and b are within a tiny distance.
func isNear(a, b bezier.Point) bool {
	return a.SquareDistance(b) < 1e-9
}
