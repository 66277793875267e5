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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var intersectCases = []TestCase{
	{
		Name:   "bowtie_nonzero",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "bowtie_evenodd",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "figure_eight_curve",
		Path:   figureEight(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_triangles",
		Path:   overlappingTriangles(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_triangles_evenodd",
		Path:   overlappingTriangles(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "coincident_edges",
		Path:   coincidentEdges(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "coincident_edges_evenodd",
		Path:   coincidentEdges(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "spiral_closed",
		Path:   spiral(32, 32, 4, 28, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "spiral_closed_evenodd",
		Path:   spiral(32, 32, 4, 28, 3),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_polygon_7_3",
		Path:   starPolygon(64, 64, 56, 7, 3),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "star_polygon_11_4_evenodd",
		Path:   starPolygon(64, 64, 56, 11, 4),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		Name:   "crossing_bands",
		Path:   crossingBands(64, 64, 60, 6, 5),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "crossing_curves_evenodd",
		Path:   crossingCurves(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "vertex_on_edge",
		Path:   vertexOnEdge(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// figureEight builds a single closed curve which crosses itself once in
// the centre, so that its two lobes have opposite winding numbers.
func figureEight(cx, cy, size float64) *path.Data {
	r := size / 2
	k := r * kappa
	top := cy - r
	bot := cy + r
	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+k, cy-r/2), pt(cx+r, top+k), pt(cx+r, top)).
		CubeTo(pt(cx+r, top-k), pt(cx+k, top-r), pt(cx, top-r)).
		CubeTo(pt(cx-k, top-r), pt(cx-r, top-k), pt(cx-r, top)).
		CubeTo(pt(cx-r, top+k), pt(cx-k, cy-r/2), pt(cx, cy)).
		CubeTo(pt(cx+k, cy+r/2), pt(cx+r, bot-k), pt(cx+r, bot)).
		CubeTo(pt(cx+r, bot+k), pt(cx+k, bot+r), pt(cx, bot+r)).
		CubeTo(pt(cx-k, bot+r), pt(cx-r, bot+k), pt(cx-r, bot)).
		CubeTo(pt(cx-r, bot-k), pt(cx-k, cy+r/2), pt(cx, cy)).
		Close()
}

// overlappingTriangles builds two triangles with the same orientation
// whose edges cross six times.
func overlappingTriangles() *path.Data {
	p := addPolygon(&path.Data{}, pt(32, 4), pt(58, 48), pt(6, 48))
	return addPolygon(p, pt(32, 60), pt(6, 16), pt(58, 16))
}

// coincidentEdges builds three rectangles which share parts of their
// boundaries, with some shared edges running in the same direction.
func coincidentEdges() *path.Data {
	p := addPolygon(&path.Data{}, pt(8, 8), pt(40, 8), pt(40, 40), pt(8, 40))
	p = addPolygon(p, pt(24, 8), pt(56, 8), pt(56, 40), pt(24, 40))
	return addPolygon(p, pt(8, 24), pt(56, 24), pt(56, 56), pt(8, 56))
}

// spiral builds an Archimedean spiral from line segments. The path is
// filled, so the implicit closing edge crosses all the turns.
func spiral(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}

// starPolygon builds the regular star polygon {n/step}, which visits every
// step-th corner of a regular n-gon.
func starPolygon(cx, cy, r float64, n, step int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2*math.Pi*float64(i*step%n)/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(pts...)
}

// crossingBands builds n thin rectangles through a common centre, rotated
// against each other, so that every pair of bands intersects.
func crossingBands(cx, cy, length, width float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		phi := math.Pi * (float64(i) + 0.1) / float64(n)
		dx, dy := math.Cos(phi), math.Sin(phi)
		ux, uy := dx*length/2, dy*length/2
		wx, wy := -dy*width/2, dx*width/2
		p = addPolygon(p,
			pt(cx-ux-wx, cy-uy-wy), pt(cx+ux-wx, cy+uy-wy),
			pt(cx+ux+wx, cy+uy+wy), pt(cx-ux+wx, cy-uy+wy))
	}
	return p
}

// crossingCurves builds two lens shapes made of quadratic and cubic curves
// which intersect each other.
func crossingCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(6, 32)).
		QuadTo(pt(32, -8), pt(58, 32)).
		QuadTo(pt(32, 72), pt(6, 32)).
		Close().
		MoveTo(pt(32, 6)).
		CubeTo(pt(68, 14), pt(68, 50), pt(32, 58)).
		CubeTo(pt(-4, 50), pt(-4, 14), pt(32, 6)).
		Close()
}

// vertexOnEdge builds a square and a triangle whose tip lies exactly on
// one of the square's edges.
func vertexOnEdge() *path.Data {
	p := addPolygon(&path.Data{}, pt(8, 8), pt(40, 8), pt(40, 40), pt(8, 40))
	return addPolygon(p, pt(40, 24), pt(58, 4), pt(58, 56))
}
