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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// Polygons which need each kind of vertex: split, merge, start, end.
	{
		Name:   "monotone",
		Path:   polygon(pt(30, 4), pt(22, 12), pt(8, 20), pt(22, 28), pt(4, 44), pt(30, 52)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "split",
		Path:   polygon(pt(8, 8), pt(56, 20), pt(56, 56), pt(32, 36), pt(8, 56)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "merge",
		Path:   polygon(pt(8, 8), pt(32, 28), pt(56, 8), pt(56, 56), pt(8, 44)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "merge_split",
		Path:   polygon(pt(8, 8), pt(32, 32), pt(56, 8), pt(56, 56), pt(32, 32), pt(8, 56)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "comb",
		Path:   comb(6, 8, 56, 8, 40, 58),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "zigzag_band",
		Path:   zigzagBand(6, 58, 20, 8, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "horizontal_edges",
		Path:   polygon(pt(8, 8), pt(24, 8), pt(24, 24), pt(40, 24), pt(40, 8), pt(56, 8), pt(56, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// rectangle builds an axis-aligned rectangle with corners (x1, y1) and
// (x2, y2).
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// comb builds a shape with n teeth pointing upwards, between x1 and x2.
// The tips are at tipY, the gaps between teeth reach down to rootY, and
// the bottom edge is at baseY. Every tip starts a new span.
func comb(n int, x1, x2, tipY, rootY, baseY float64) *path.Data {
	w := (x2 - x1) / float64(n)
	p := (&path.Data{}).MoveTo(pt(x1, baseY))
	for i := range n {
		x := x1 + float64(i)*w
		p = p.LineTo(pt(x, rootY)).
			LineTo(pt(x+w/2, tipY)).
			LineTo(pt(x+w, rootY))
	}
	return p.LineTo(pt(x2, baseY)).Close()
}

// zigzagBand builds a band between x1 and x2 whose upper and lower edges
// zigzag, so that the sweep sees many left and right vertices.
func zigzagBand(x1, x2, y, amplitude float64, n int) *path.Data {
	step := (x2 - x1) / float64(n)
	p := (&path.Data{}).MoveTo(pt(x1, y))
	for i := 1; i <= n; i++ {
		dy := 0.0
		if i%2 == 1 {
			dy = -amplitude
		}
		p = p.LineTo(pt(x1+float64(i)*step, y+dy))
	}
	for i := n; i >= 0; i-- {
		dy := 2 * amplitude
		if i%2 == 1 {
			dy = 3 * amplitude
		}
		p = p.LineTo(pt(x1+float64(i)*step, y+dy))
	}
	return p.Close()
}
