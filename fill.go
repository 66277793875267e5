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
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tessellate/bezier"
)

// coincidentSlope is the slope difference below which two edges leaving
// a vertex are treated as overlapping.
const coincidentSlope = 0.00005

// FillTessellator computes triangle meshes for filled paths.
//
// The sweep line moves over the vertices of the flattened path in order of
// increasing y. The area between each pair of active edges which is inside
// the path forms a "span". Each span is a y-monotone polygon, and is
// triangulated while the sweep progresses.
//
// A FillTessellator can be reused for many paths, which avoids repeated
// allocations. It is not safe for concurrent use.
type FillTessellator struct {
	currentPosition bezier.Point
	currentVertex   VertexID
	currentEvent    eventID

	active     []activeEdge
	edgesBelow []pendingEdge
	fill       spans

	fillRule              FillRule
	horizontal            bool
	tolerance             float32
	assumeNoIntersections bool
	withNormals           bool

	scan    activeEdgeScan
	events  eventQueue
	builder queueBuilder

	// scratch space
	newEdges []activeEdge
	sortKeys []edgeSortKey

	log              *slog.Logger
	debug            bool
	numIntersections int
}

// NewFillTessellator returns a new tessellator.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// Tessellate computes the triangulation of the area enclosed by the given
// path events and sends it to out.
//
// The path is validated before any method of out is called. If the path is
// malformed, an error wrapping one of ErrEmptyPath, ErrNonFinite,
// ErrMissingBegin, ErrMissingEnd, or ErrDiscontinuous is returned and out
// is left untouched. Otherwise out.BeginGeometry is called first. On
// success out.EndGeometry is called last; on failure out.AbortGeometry is
// called instead.
//
// If opt.AssumeNoIntersections is set and the path does intersect itself,
// the output is undefined. No error is reported in this case.
func (t *FillTessellator) Tessellate(events iter.Seq[PathEvent], opt Options, out FillGeometryBuilder) (err error) {
	if err := opt.validate(); err != nil {
		return err
	}

	begun := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
		if err != nil && begun {
			out.AbortGeometry()
			t.reset()
		}
	}()

	t.reset()
	if err := t.builder.build(&t.events, events, &opt); err != nil {
		return err
	}

	t.fillRule = opt.FillRule
	t.horizontal = opt.SweepOrientation == Horizontal
	t.tolerance = opt.Tolerance * 0.5
	t.assumeNoIntersections = opt.AssumeNoIntersections
	t.withNormals = opt.WithNormals
	t.log = Logger()
	t.debug = t.log.Enabled(context.Background(), slog.LevelDebug)
	t.numIntersections = 0

	if t.debug {
		t.log.Debug("tessellating path",
			slog.Float64("tolerance", float64(opt.Tolerance)),
			slog.String("fillRule", opt.FillRule.String()),
			slog.Bool("assumeNoIntersections", opt.AssumeNoIntersections),
			slog.Bool("withNormals", opt.WithNormals),
			slog.String("orientation", opt.SweepOrientation.String()),
			slog.Int("events", len(t.events.events)))
	}

	out.BeginGeometry()
	begun = true

	if err := t.sweep(out); err != nil {
		return err
	}

	// Spans can only be left over if the sweep was inconsistent.
	for _, tess := range t.fill.spans {
		if tess != nil {
			tess.flush(out)
		}
	}
	t.fill.clear()

	count := out.EndGeometry()
	if t.debug {
		t.log.Debug("tessellation done",
			slog.Int("vertices", int(count.Vertices)),
			slog.Int("triangles", int(count.Indices/3)),
			slog.Int("intersections", t.numIntersections))
	}
	return nil
}

// TessellatePath tessellates a path from the geom package, after applying
// the transformation m. See [FromPath] for how the path is interpreted.
func (t *FillTessellator) TessellatePath(p path.Path, m matrix.Matrix, opt Options, out FillGeometryBuilder) error {
	return t.Tessellate(FromPath(p, m), opt, out)
}

// TessellatePolygon tessellates the closed polygon with the given vertices.
func (t *FillTessellator) TessellatePolygon(points []bezier.Point, opt Options, out FillGeometryBuilder) error {
	return t.Tessellate(PolygonEvents(points, true), opt, out)
}

// TessellateRectangle tessellates an axis-aligned rectangle.
func (t *FillTessellator) TessellateRectangle(r rect.Rect, opt Options, out FillGeometryBuilder) error {
	return t.Tessellate(rectangleEvents(r), opt, out)
}

// TessellateCircle tessellates a circle with the given center and radius.
// The sign of radius is ignored.
func (t *FillTessellator) TessellateCircle(center bezier.Point, radius float32, opt Options, out FillGeometryBuilder) error {
	return t.TessellateEllipse(center, bezier.Vector{X: radius, Y: radius}, 0, opt, out)
}

// TessellateEllipse tessellates an ellipse with the given center and radii.
// The ellipse is rotated counter-clockwise around its center by the angle
// rotation, given in radians.
//
// An ellipse cannot intersect itself, so opt.AssumeNoIntersections is
// implied.
func (t *FillTessellator) TessellateEllipse(center bezier.Point, radii bezier.Vector, rotation float32, opt Options, out FillGeometryBuilder) error {
	opt.AssumeNoIntersections = true
	return t.Tessellate(ellipseEvents(center, radii, rotation), opt, out)
}

// TessellatePath is a convenience function which tessellates a path with a
// new [FillTessellator] and returns the vertex positions and indices.
func TessellatePath(p path.Path, m matrix.Matrix, opt Options) (*VertexBuffers[bezier.Point], error) {
	return tessellateToBuffers(FromPath(p, m), opt)
}

// TessellatePolygon is a convenience function which tessellates the closed
// polygon with the given vertices.
func TessellatePolygon(points []bezier.Point, opt Options) (*VertexBuffers[bezier.Point], error) {
	return tessellateToBuffers(PolygonEvents(points, true), opt)
}

func tessellateToBuffers(events iter.Seq[PathEvent], opt Options) (*VertexBuffers[bezier.Point], error) {
	buf := &VertexBuffers[bezier.Point]{}
	err := NewFillTessellator().Tessellate(events, opt, NewBuffersBuilder(buf, Positions))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (t *FillTessellator) reset() {
	t.currentPosition = bezier.Point{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}
	t.currentVertex = InvalidVertexID
	t.currentEvent = invalidEvent
	t.active = t.active[:0]
	t.edgesBelow = t.edgesBelow[:0]
	t.fill.clear()
}

// sweep processes all events in order.
func (t *FillTessellator) sweep(out FillGeometryBuilder) error {
	prevPosition := t.currentPosition
	for t.currentEvent = t.events.first; t.currentEvent != invalidEvent; t.currentEvent = t.events.next(t.currentEvent) {
		if err := t.initializeEvents(out); err != nil {
			return err
		}
		if debugChecks && !isAfter(t.currentPosition, prevPosition) {
			panic(fmt.Sprintf("event %v is not after %v", t.currentPosition, prevPosition))
		}
		prevPosition = t.currentPosition

		if err := t.processEvents(out); err != nil {
			if t.debug {
				t.log.Debug("recovering from inconsistent sweep state",
					slog.Any("position", t.outputPoint(t.currentPosition)),
					slog.String("cause", err.Error()))
			}
			t.recoverFromError(out)

			if err := t.processEvents(out); err != nil {
				if !t.assumeNoIntersections {
					return fmt.Errorf("%w: at %v: %w", ErrInternal, t.outputPoint(t.currentPosition), err)
				}
				// Self-intersections were promised away, so the output
				// is undefined anyway.
				t.log.Debug("skipping event after failed recovery",
					slog.Any("position", t.outputPoint(t.currentPosition)),
					slog.String("cause", err.Error()))
				t.edgesBelow = t.edgesBelow[:0]
				continue
			}
		}

		if debugChecks && !t.assumeNoIntersections {
			t.checkActiveEdges()
		}
	}
	return nil
}

// outputPoint maps a point from the sweep frame to the coordinates of the
// input path.
func (t *FillTessellator) outputPoint(p bezier.Point) bezier.Point {
	if t.horizontal {
		return bezier.Point{X: p.Y, Y: -p.X}
	}
	return p
}

// initializeEvents creates the vertex for the current event position and
// collects the edges starting there.
func (t *FillTessellator) initializeEvents(out FillGeometryBuilder) error {
	pos := t.events.position(t.currentEvent)
	t.currentPosition = pos

	v := FillVertex{Position: t.outputPoint(pos)}
	if t.withNormals {
		if n, ok := t.builder.normals[pos]; ok {
			if t.horizontal {
				n = bezier.Vector{X: n.Y, Y: -n.X}
			}
			v.Normal = n
			v.HasNormal = true
		}
	}
	id, err := out.AddFillVertex(v)
	if err != nil {
		return fmt.Errorf("adding vertex at %v: %w", v.Position, err)
	}
	t.currentVertex = id

	for sib := t.currentEvent; sib != invalidEvent; sib = t.events.nextSibling(sib) {
		e := &t.events.edges[sib]
		if !e.isEdge {
			continue
		}
		t.edgesBelow = append(t.edgesBelow, pendingEdge{
			to:      e.to,
			sortKey: slope(e.to.Sub(pos)),
			winding: e.winding,
		})
	}
	return nil
}

// processEvents performs one step of the sweep. If an inconsistency is
// detected, an error is returned before any state has been modified.
func (t *FillTessellator) processEvents(out FillGeometryBuilder) error {
	if err := t.scanActiveEdges(); err != nil {
		return err
	}
	t.processEdgesAbove(out)
	t.processEdgesBelow()
	t.updateActiveEdges()
	return nil
}

// windingState tracks the winding number while moving along the sweep
// line from left to right.
type windingState struct {
	spanIndex int32 // index of the span we are in, or last were in
	number    int16
	isIn      bool
}

func newWindingState() windingState {
	// Entering the first span increments the index to zero.
	return windingState{spanIndex: -1}
}

func (w *windingState) update(rule FillRule, edgeWinding int16) {
	w.number += edgeWinding
	w.isIn = rule.isIn(w.number)
	if w.isIn {
		w.spanIndex++
	}
}

type spanVertexEvent struct {
	span int32
	side side
}

// activeEdgeScan holds the result of scanning the active edges at the
// current position.
type activeEdgeScan struct {
	vertexEvents []spanVertexEvent
	edgesToSplit []int
	spansToEnd   []int32

	mergeEvent      bool
	splitEvent      bool
	mergeSplitEvent bool

	// active edges which connect with the current position
	aboveStart, aboveEnd int

	windingBeforePoint windingState
}

func (s *activeEdgeScan) reset() {
	s.vertexEvents = s.vertexEvents[:0]
	s.edgesToSplit = s.edgesToSplit[:0]
	s.spansToEnd = s.spansToEnd[:0]
	s.mergeEvent = false
	s.splitEvent = false
	s.mergeSplitEvent = false
	s.aboveStart, s.aboveEnd = 0, 0
	s.windingBeforePoint = newWindingState()
}

// activeEdge is an edge which crosses the sweep line. Merge vertices which
// have not been resolved yet are kept in the active edge list as well,
// with isMerge set and from == to.
type activeEdge struct {
	from, to bezier.Point
	winding  int16
	isMerge  bool
	fromID   VertexID
}

func (e *activeEdge) minX() float32 {
	return min(e.from.X, e.to.X)
}

func (e *activeEdge) maxX() float32 {
	return max(e.from.X, e.to.X)
}

// solveXForY returns the x coordinate of the edge at height y, clamped to
// the x range of the edge so that it is consistent with minX and maxX.
func (e *activeEdge) solveXForY(y float32) float32 {
	x := bezier.LineSegment{From: e.from, To: e.to}.SolveXForY(y)
	return min(max(x, e.minX()), e.maxX())
}

// pendingEdge is an edge which starts at the current position.
type pendingEdge struct {
	to      bezier.Point
	sortKey float32
	winding int16
}

// spans holds the monotone tessellators of the spans between active edges,
// ordered from left to right. Ended spans are set to nil until the next
// call to cleanup.
type spans struct {
	spans []*monotoneTessellator
	pool  []*monotoneTessellator
}

func (s *spans) begin(idx int32, pos bezier.Point, id VertexID) {
	var tess *monotoneTessellator
	if n := len(s.pool); n > 0 {
		tess = s.pool[n-1]
		s.pool = s.pool[:n-1]
	} else {
		tess = &monotoneTessellator{}
	}
	tess.begin(pos, id)
	s.spans = slices.Insert(s.spans, int(idx), tess)
}

func (s *spans) end(idx int32, pos bezier.Point, id VertexID, out FillGeometryBuilder) {
	tess := s.get(idx)
	tess.end(pos, id)
	tess.flush(out)
	s.pool = append(s.pool, tess)
	s.spans[idx] = nil
}

func (s *spans) get(idx int32) *monotoneTessellator {
	tess := s.spans[idx]
	if tess == nil {
		panic(fmt.Sprintf("span %d used after it ended", idx))
	}
	return tess
}

// cleanup removes the spans which have ended.
func (s *spans) cleanup() {
	s.spans = slices.DeleteFunc(s.spans, func(tess *monotoneTessellator) bool {
		return tess == nil
	})
}

func (s *spans) clear() {
	for _, tess := range s.spans {
		if tess != nil {
			s.pool = append(s.pool, tess)
		}
	}
	clear(s.spans)
	s.spans = s.spans[:0]
}

// scanActiveEdges collects the information needed to process the current
// position, without modifying the sweep state. An error indicates that the
// active edges are not correctly ordered.
//
// The scan has three steps:
//  1. Edges left of the current position give the winding number.
//  2. Edges which connect with the current position determine which spans
//     end and which receive the current vertex.
//  3. Edges right of the current position are checked for ordering errors.
func (t *FillTessellator) scanActiveEdges() error {
	scan := &t.scan
	scan.reset()

	currentX := t.currentPosition.X
	connectingEdges := false
	idx := 0
	winding := newWindingState()
	previousWasMerge := false

	for i := range t.active {
		edge := &t.active[i]
		if edge.isMerge {
			// An unresolved merge vertex means the spans left and right of
			// it are adjacent, so the span index is bumped manually.
			winding.spanIndex++
			idx++
			previousWasMerge = true
			continue
		}

		var before bool
		switch {
		case t.currentPosition == edge.to:
			connectingEdges = true
		case edge.maxX() < currentX:
			before = true
		case edge.minX() > currentX:
			// right of the current position
		case edge.from.Y == edge.to.Y:
			connectingEdges = true
		default:
			ex := edge.solveXForY(t.currentPosition.Y)
			if math32.Abs(ex-currentX) <= t.tolerance {
				connectingEdges = true
			} else if ex < currentX {
				before = true
			}
		}
		if !before {
			break
		}

		winding.update(t.fillRule, edge.winding)
		previousWasMerge = false
		idx++
	}

	scan.aboveStart = idx
	scan.windingBeforePoint = winding

	if previousWasMerge {
		// The first connecting edge is a merge vertex. The span on its
		// left gets the current vertex on its right side, but does not end.
		scan.windingBeforePoint.spanIndex--
		scan.aboveStart--

		if !connectingEdges {
			// The merge vertex is the only edge connecting with the
			// current position, so two edges must leave the current
			// position downwards. The merge and the split cancel out.
			scan.vertexEvents = append(scan.vertexEvents,
				spanVertexEvent{winding.spanIndex - 1, right},
				spanVertexEvent{winding.spanIndex, left})
			scan.mergeSplitEvent = true
		}
	}

	scan.splitEvent = !connectingEdges && winding.isIn && !scan.mergeSplitEvent

	if connectingEdges {
		inBeforeVertex := winding.isIn
		firstConnectingEdge := !previousWasMerge

		for idx < len(t.active) {
			edge := &t.active[idx]
			if edge.isMerge {
				if !winding.isIn {
					return &sweepError{kind: errMergeVertexOutside}
				}
				// The span left of the merge ends here. To the right, we
				// pretend that the sweep just entered the shape.
				scan.spansToEnd = append(scan.spansToEnd, winding.spanIndex)
				winding.spanIndex++
				idx++
				firstConnectingEdge = false
				continue
			}

			connecting, err := t.isEdgeConnecting(edge, idx)
			if err != nil {
				return err
			}
			if !connecting {
				break
			}

			if !firstConnectingEdge && winding.isIn {
				// end event
				scan.spansToEnd = append(scan.spansToEnd, winding.spanIndex)
			}

			winding.update(t.fillRule, edge.winding)

			if winding.isIn && int(winding.spanIndex) >= len(t.fill.spans) {
				return &sweepError{kind: errTooFewSpans}
			}

			idx++
			firstConnectingEdge = false
		}

		inAfterVertex := winding.isIn

		if inBeforeVertex && inAfterVertex && len(t.edgesBelow) == 0 && len(scan.edgesToSplit) == 0 {
			scan.mergeEvent = true
		}
		if inBeforeVertex {
			scan.vertexEvents = append(scan.vertexEvents,
				spanVertexEvent{scan.windingBeforePoint.spanIndex, right})
		}
		if inAfterVertex {
			scan.vertexEvents = append(scan.vertexEvents,
				spanVertexEvent{winding.spanIndex, left})
		}
	}

	scan.aboveEnd = idx

	return t.checkRemainingEdges(idx, currentX)
}

// checkRemainingEdges verifies that all active edges starting at idx lie
// right of the current position.
func (t *FillTessellator) checkRemainingEdges(idx int, currentX float32) error {
	for i := idx; i < len(t.active); i++ {
		edge := &t.active[i]
		if edge.isMerge {
			continue
		}
		if edge.maxX() < currentX {
			return &sweepError{kind: errEdgeOrder, order: 1}
		}
		if t.currentPosition == edge.to {
			return &sweepError{kind: errEdgeOrder, order: 2}
		}
		if edge.minX() < currentX && edge.solveXForY(t.currentPosition.Y) < currentX {
			return &sweepError{kind: errEdgeOrder, order: 3}
		}
	}
	return nil
}

// isEdgeConnecting reports whether an active edge ends at, or passes
// through, the current position. Edges passing through are scheduled for
// splitting.
func (t *FillTessellator) isEdgeConnecting(edge *activeEdge, idx int) (bool, error) {
	if t.currentPosition == edge.to {
		return true, nil
	}

	currentX := t.currentPosition.X
	threshold := t.tolerance
	minX, maxX := edge.minX(), edge.maxX()

	if maxX+threshold < currentX || edge.to.Y < t.currentPosition.Y {
		return false, &sweepError{kind: errEdgeOrder, order: 4}
	}
	if minX > currentX {
		return false, nil
	}

	var ex float32
	switch {
	case edge.from.Y != edge.to.Y:
		ex = edge.solveXForY(t.currentPosition.Y)
	case maxX >= currentX && minX <= currentX:
		ex = currentX
	default:
		ex = edge.to.X
	}

	if math32.Abs(ex-currentX) <= threshold {
		t.scan.edgesToSplit = append(t.scan.edgesToSplit, idx)
		return true, nil
	}
	if ex < currentX {
		return false, &sweepError{kind: errEdgeOrder, order: 5}
	}
	return false, nil
}

// processEdgesAbove handles the active edges which end at the current
// position.
func (t *FillTessellator) processEdgesAbove(out FillGeometryBuilder) {
	scan := &t.scan
	for _, ev := range scan.vertexEvents {
		t.fill.get(ev.span).vertex(t.currentPosition, t.currentVertex, ev.side)
	}

	for _, idx := range scan.spansToEnd {
		t.fill.end(idx, t.currentPosition, t.currentVertex, out)
	}
	t.fill.cleanup()

	for _, idx := range scan.edgesToSplit {
		edge := &t.active[idx]
		t.edgesBelow = append(t.edgesBelow, pendingEdge{
			to:      edge.to,
			sortKey: slope(edge.to.Sub(t.currentPosition)),
			winding: edge.winding,
		})
		edge.to = t.currentPosition
	}

	if scan.mergeEvent {
		// The left edge becomes the merge vertex, and is kept in the
		// active edge list until a vertex below resolves it.
		edge := &t.active[scan.aboveStart]
		edge.isMerge = true
		edge.from = edge.to
		edge.winding = 0
		edge.fromID = t.currentVertex
		scan.aboveStart++
	}
}

// processEdgesBelow handles the edges which start at the current position.
func (t *FillTessellator) processEdgesBelow() {
	scan := &t.scan
	winding := scan.windingBeforePoint

	slices.SortFunc(t.edgesBelow, func(a, b pendingEdge) int {
		return cmp.Compare(a.sortKey, b.sortKey)
	})
	t.handleCoincidentEdgesBelow()

	if scan.splitEvent {
		t.splitEvent(scan.aboveStart-1, winding.spanIndex)
	}

	for i := range t.edgesBelow {
		if i > 0 && winding.isIn {
			// start event
			t.fill.begin(winding.spanIndex, t.currentPosition, t.currentVertex)
		}
		winding.update(t.fillRule, t.edgesBelow[i].winding)
	}
}

// splitEvent handles a vertex inside a span, where two edges start. The
// new span begins at the lower of the upper end points of the two edges
// which enclose the current position.
func (t *FillTessellator) splitEvent(leftEdge int, leftSpan int32) {
	rightEdge := leftEdge + 1
	rightSpan := leftSpan + 1

	upperLeft := t.active[leftEdge].from
	upperRight := t.active[rightEdge].from

	var upperPos bezier.Point
	var upperID VertexID
	var newSpan int32
	if isAfter(upperLeft, upperRight) {
		upperPos, upperID, newSpan = upperLeft, t.active[leftEdge].fromID, leftSpan
	} else {
		upperPos, upperID, newSpan = upperRight, t.active[rightEdge].fromID, rightSpan
	}

	t.fill.begin(newSpan, upperPos, upperID)
	t.fill.get(leftSpan).vertex(t.currentPosition, t.currentVertex, right)
	t.fill.get(rightSpan).vertex(t.currentPosition, t.currentVertex, left)
}

// updateActiveEdges replaces the edges ending at the current position by
// the edges starting there.
func (t *FillTessellator) updateActiveEdges() {
	start, end := t.scan.aboveStart, t.scan.aboveEnd

	if !t.assumeNoIntersections {
		t.handleIntersections(start, end)
	}

	if debugChecks {
		for _, e := range t.active[start:end] {
			if !e.isMerge && isAfter(t.currentPosition, e.to) {
				panic(fmt.Sprintf("active edge %v -> %v ends above %v", e.from, e.to, t.currentPosition))
			}
		}
	}

	t.newEdges = t.newEdges[:0]
	for _, e := range t.edgesBelow {
		t.newEdges = append(t.newEdges, activeEdge{
			from:    t.currentPosition,
			to:      e.to,
			winding: e.winding,
			fromID:  t.currentVertex,
		})
	}
	t.active = slices.Replace(t.active, start, end, t.newEdges...)
	t.edgesBelow = t.edgesBelow[:0]
}

// handleCoincidentEdgesBelow merges edges below the current position which
// overlap.
func (t *FillTessellator) handleCoincidentEdgesBelow() {
	for i := len(t.edgesBelow) - 2; i >= 0; i-- {
		a := t.edgesBelow[i].sortKey
		b := t.edgesBelow[i+1].sortKey

		// The slope is a poor approximation of the angle for edges close
		// to horizontal, where the inverse is used instead.
		var isClose bool
		if math32.Abs(a) <= 1 {
			isClose = math32.Abs(a-b) < coincidentSlope
		} else {
			isClose = math32.Abs(1/a-1/b) < coincidentSlope
		}
		if isClose {
			t.mergeCoincidentEdges(i, i+1)
		}
	}
}

// mergeCoincidentEdges replaces two overlapping edges by a single edge
// which ends at the upper of the two end points. The remainder of the
// longer edge is queued as a new edge.
func (t *FillTessellator) mergeCoincidentEdges(a, b int) {
	aTo := t.edgesBelow[a].to
	bTo := t.edgesBelow[b].to

	var lower, upper int
	split := true
	switch comparePositions(aTo, bTo) {
	case 1:
		lower, upper = a, b
	case -1:
		lower, upper = b, a
	default:
		lower, upper = a, b
		split = false
	}

	t.edgesBelow[upper].winding += t.edgesBelow[lower].winding
	splitPoint := t.edgesBelow[upper].to

	edge := t.edgesBelow[lower]
	t.edgesBelow = slices.Delete(t.edgesBelow, lower, lower+1)
	if !split {
		return
	}

	t.events.insertSorted(splitPoint, edgeData{
		to:      edge.to,
		winding: edge.winding,
		isEdge:  true,
	}, t.currentEvent)
}

// handleIntersections checks the edges below the current position against
// the active edges. For each new edge only the closest intersection is
// kept. Both edges are truncated there and their lower parts are added to
// the event queue.
//
// The active edges in [skipStart, skipEnd) end at the current position and
// are ignored.
func (t *FillTessellator) handleIntersections(skipStart, skipEnd int) {
	for i := range t.edgesBelow {
		below := &t.edgesBelow[i]
		belowMinX := min(t.currentPosition.X, below.to.X)
		belowMaxX := max(t.currentPosition.X, below.to.X)
		belowSeg := bezier.LineSegment{From: t.currentPosition, To: below.to}

		tbMin := 1.0
		found := -1
		var ta, tb float64
		for j := range t.active {
			if j >= skipStart && j < skipEnd {
				continue
			}
			edge := &t.active[j]
			// Edges further right may still extend further left, so there
			// is no early exit.
			if edge.isMerge || belowMinX > edge.maxX() || belowMaxX < edge.minX() {
				continue
			}

			activeSeg := bezier.LineSegment{From: edge.from, To: edge.to}
			a, b, ok := activeSeg.IntersectionT(belowSeg)
			if ok && b < tbMin && b > 0 && a > 0 && a <= 1 {
				tbMin = b
				found = j
				ta, tb = a, b
			}
		}

		if found >= 0 {
			t.processIntersection(ta, tb, found, below, belowSeg)
		}
	}
}

func (t *FillTessellator) processIntersection(ta, tb float64, idx int, below *pendingEdge, belowSeg bezier.LineSegment) {
	pos := belowSeg.Sample64(tb)
	edge := &t.active[idx]
	t.numIntersections++

	if t.debug {
		t.log.Debug("intersection",
			slog.Any("position", t.outputPoint(pos)),
			slog.Float64("ta", ta),
			slog.Float64("tb", tb))
	}

	if t.currentPosition == pos {
		edge.from = pos
		return
	}

	if !isAfter(pos, t.currentPosition) {
		// Rounding moved the intersection above the sweep line.
		pos.Y = math32.Nextafter(t.currentPosition.Y, math32.Inf(1))
	}
	if debugChecks && !isAfter(pos, t.currentPosition) {
		panic(fmt.Sprintf("intersection %v is not after %v", pos, t.currentPosition))
	}

	if isNear(pos, below.to) {
		pos = below.to
	} else if isNear(pos, edge.to) {
		pos = edge.to
	}

	inserted := invalidEvent
	flippedActive := false

	if edge.to != pos && edge.from != pos {
		if isAfter(edge.to, pos) {
			inserted = t.events.insertSorted(pos, edgeData{
				to:      edge.to,
				winding: edge.winding,
				isEdge:  true,
			}, t.currentEvent)
		} else {
			// The remainder would point upwards.
			flippedActive = true
			t.events.insertSorted(edge.to, edgeData{
				to:      pos,
				winding: -edge.winding,
				isEdge:  true,
			}, t.currentEvent)
		}
		edge.to = pos
	}

	if below.to != pos && t.currentPosition != pos {
		if isAfter(below.to, pos) {
			data := edgeData{to: below.to, winding: below.winding, isEdge: true}
			if inserted != invalidEvent {
				t.events.insertSibling(inserted, pos, data)
			} else {
				t.events.insertSorted(pos, data, t.currentEvent)
			}
		} else {
			t.events.insertSorted(below.to, edgeData{
				to:      pos,
				winding: -below.winding,
				isEdge:  true,
			}, t.currentEvent)

			if flippedActive {
				// Both remainders were flipped, which turns the
				// intersection into a bottom vertex. Make sure the sweep
				// visits it.
				t.events.vertexEventSorted(pos, t.currentEvent)
			}
		}
		below.to = pos
	}
}

type edgeSortKey struct {
	x   float32
	idx int
}

// sortActiveEdges sorts the active edges by their x coordinate at the
// sweep line.
//
// Merge vertices are points rather than edges, and are kept next to the
// edge preceding them. This can move a merge vertex outside of the shape,
// so afterwards merge vertices are moved left until they are inside again.
func (t *FillTessellator) sortActiveEdges() {
	y := t.currentPosition.Y

	keys := t.sortKeys[:0]
	hasMerge := false
	prevX := math32.NaN()
	for i := range t.active {
		edge := &t.active[i]
		if edge.isMerge {
			hasMerge = true
			keys = append(keys, edgeSortKey{prevX, i})
			continue
		}

		eqTo := edge.to.Y == y
		eqFrom := edge.from.Y == y
		var x float32
		switch {
		case eqTo && eqFrom:
			currentX := t.currentPosition.X
			if edge.maxX() >= currentX && edge.minX() <= currentX {
				x = currentX
			} else {
				x = edge.minX()
			}
		case eqFrom:
			x = edge.from.X
		case eqTo:
			x = edge.to.X
		default:
			x = edge.solveXForY(y)
		}
		keys = append(keys, edgeSortKey{max(x, edge.minX()), i})
		prevX = x
	}

	slices.SortFunc(keys, func(a, b edgeSortKey) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		ea, eb := &t.active[a.idx], &t.active[b.idx]
		switch {
		case !ea.isMerge && !eb.isMerge:
			return cmp.Compare(slope(eb.to.Sub(eb.from)), slope(ea.to.Sub(ea.from)))
		case ea.isMerge && !eb.isMerge:
			return 1
		case !ea.isMerge && eb.isMerge:
			return -1
		}
		return 0
	})
	t.sortKeys = keys

	t.newEdges = t.newEdges[:0]
	for _, k := range keys {
		t.newEdges = append(t.newEdges, t.active[k.idx])
	}
	t.active, t.newEdges = t.newEdges, t.active

	if !hasMerge {
		return
	}

	var w int16
	for i := 0; i < len(t.active); i++ {
		if !t.active[i].isMerge {
			w += t.active[i].winding
			continue
		}
		if t.fillRule.isIn(w) {
			continue
		}
		ww := w
		j := i
		for ; j > 0; j-- {
			// undo the winding of the edge on the left, then swap
			ww -= t.active[j-1].winding
			t.active[j], t.active[j-1] = t.active[j-1], t.active[j]
			if t.fillRule.isIn(ww) {
				break
			}
		}
		if j == 0 {
			// There is no inside position on the left, which can only
			// happen for self-intersecting input with
			// AssumeNoIntersections. Drop the merge vertex.
			t.active = slices.Delete(t.active, 0, 1)
			i--
		}
	}
}

// recoverFromError brings the active edges back into a consistent state
// after the scan detected an ordering problem: the active edges are
// sorted, and spans are added or flushed to match the winding numbers.
func (t *FillTessellator) recoverFromError(out FillGeometryBuilder) {
	t.sortActiveEdges()

	// Only possible when self-intersections are ignored. The rest of the
	// sweep cannot handle a merge vertex in the last position.
	if n := len(t.active); n > 1 && t.active[n-1].isMerge {
		t.active[n-1], t.active[n-2] = t.active[n-2], t.active[n-1]
	}

	winding := newWindingState()
	for i := range t.active {
		edge := &t.active[i]
		if edge.isMerge {
			winding.spanIndex++
		} else {
			winding.update(t.fillRule, edge.winding)
		}
		if int(winding.spanIndex) >= len(t.fill.spans) {
			t.fill.begin(winding.spanIndex, edge.from, edge.fromID)
		}
	}

	for len(t.fill.spans) > int(winding.spanIndex+1) {
		n := len(t.fill.spans) - 1
		if tess := t.fill.spans[n]; tess != nil {
			tess.flush(out)
			t.fill.pool = append(t.fill.pool, tess)
		}
		t.fill.spans = t.fill.spans[:n]
	}
}

// checkActiveEdges verifies the invariants of the active edge list.
func (t *FillTessellator) checkActiveEdges() {
	winding := newWindingState()
	for i := range t.active {
		edge := &t.active[i]
		winding.update(t.fillRule, edge.winding)
		if edge.isMerge {
			if !t.fillRule.isIn(winding.number) {
				panic(fmt.Sprintf("merge vertex %d at %v is outside", i, edge.from))
			}
		} else if isAfter(t.currentPosition, edge.to) {
			panic(fmt.Sprintf("active edge %d ends at %v, above %v", i, edge.to, t.currentPosition))
		}
	}
	if winding.number != 0 {
		panic(fmt.Sprintf("winding number %d after last active edge", winding.number))
	}
	if len(t.fill.spans) != int(winding.spanIndex+1) {
		panic(fmt.Sprintf("%d spans, expected %d", len(t.fill.spans), winding.spanIndex+1))
	}
}

// slope is a monotonic function of the angle between v and the x axis,
// for vectors pointing downwards.
func slope(v bezier.Vector) float32 {
	return v.X / max(v.Y, -math32.MaxFloat32)
}
