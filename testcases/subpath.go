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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_shape_reversed",
		Path:   ringShape(32, 32, 25, 12, true),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "shared_edge",
		Path:   sharedEdge(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "touching_corners",
		Path:   touchingCorners(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "after_close",
		Path:   lineAfterClose(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := addPolygon(&path.Data{}, pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size))
	return addPolygon(p, pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size))
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := addPolygon(&path.Data{}, pt(x1a, y1a), pt(x2a, y1a), pt(x2a, y2a), pt(x1a, y2a))
	return addPolygon(p, pt(x1b, y1b), pt(x2b, y1b), pt(x2b, y2b), pt(x1b, y2b))
}

// ringShape builds a ring (outer rectangle with inner rectangle cutout).
// If reversed is false, both rectangles have the same orientation and the
// hole only appears with the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64, reversed bool) *path.Data {
	p := addPolygon(&path.Data{},
		pt(cx-outerSize, cy-outerSize), pt(cx+outerSize, cy-outerSize),
		pt(cx+outerSize, cy+outerSize), pt(cx-outerSize, cy+outerSize))
	if reversed {
		return addPolygon(p,
			pt(cx-innerSize, cy-innerSize), pt(cx-innerSize, cy+innerSize),
			pt(cx+innerSize, cy+innerSize), pt(cx+innerSize, cy-innerSize))
	}
	return addPolygon(p,
		pt(cx-innerSize, cy-innerSize), pt(cx+innerSize, cy-innerSize),
		pt(cx+innerSize, cy+innerSize), pt(cx-innerSize, cy+innerSize))
}

// multipleRings builds three square rings around (cx, cy).
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, ring := range rings {
		p = addPolygon(p,
			pt(ring.cx-ring.outer, ring.cy-ring.outer), pt(ring.cx+ring.outer, ring.cy-ring.outer),
			pt(ring.cx+ring.outer, ring.cy+ring.outer), pt(ring.cx-ring.outer, ring.cy+ring.outer))
		p = addPolygon(p,
			pt(ring.cx-ring.inner, ring.cy-ring.inner), pt(ring.cx+ring.inner, ring.cy-ring.inner),
			pt(ring.cx+ring.inner, ring.cy+ring.inner), pt(ring.cx-ring.inner, ring.cy+ring.inner))
	}
	return p
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *path.Data {
	size := 5.0
	spacing := 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = addPolygon(p, pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size))
		}
	}
	return p
}

// sharedEdge builds two rectangles which share an edge, one with each
// orientation, so that the winding numbers along the shared edge cancel.
func sharedEdge() *path.Data {
	p := addPolygon(&path.Data{}, pt(8, 8), pt(32, 8), pt(32, 56), pt(8, 56))
	return addPolygon(p, pt(32, 8), pt(32, 56), pt(56, 56), pt(56, 8))
}

// touchingCorners builds two squares which touch in a single point.
func touchingCorners() *path.Data {
	p := addPolygon(&path.Data{}, pt(8, 8), pt(32, 8), pt(32, 32), pt(8, 32))
	return addPolygon(p, pt(32, 32), pt(56, 32), pt(56, 56), pt(32, 56))
}

// lineAfterClose draws a second triangle after a Close without a MoveTo,
// which restarts the sub-path at the previous start point.
func lineAfterClose() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(32, 32)).
		LineTo(pt(56, 32)).
		LineTo(pt(56, 8)).
		Close().
		LineTo(pt(8, 56)).
		LineTo(pt(32, 56)).
		Close()
}
