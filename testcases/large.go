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
)

// largeCases contains test cases with many vertices or large canvases.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_circle_grid",
		Path:   circleGrid(10, 10, 512, 512),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_random_polygon",
		Path:   randomPolygon(256, 256, 40, 240, 400, 1),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
}

// concentricRectangles builds two squares around (cx, cy), both with the
// same orientation.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	p := addPolygon(&path.Data{},
		pt(cx-outer, cy-outer), pt(cx+outer, cy-outer),
		pt(cx+outer, cy+outer), pt(cx-outer, cy+outer))
	return addPolygon(p,
		pt(cx-inner, cy-inner), pt(cx+inner, cy-inner),
		pt(cx+inner, cy+inner), pt(cx-inner, cy+inner))
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = addPolygon(p, pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
		}
	}
	return p
}

// circleGrid builds a grid of circles, one per cell.
func circleGrid(rows, cols, width, height int) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	r := 0.4 * min(cellW, cellH)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			p = ellipseTo(p, cx, cy, r, r, (row+col)%2 == 1)
		}
	}
	return p
}

// randomPolygon builds a closed polygon with n corners whose angles increase
// monotonically and whose radii are pseudo-random. The corners are generated
// by a small linear congruential generator, so that the shape is the same on
// every run.
func randomPolygon(cx, cy, rMin, rMax float64, n int, seed uint32) *path.Data {
	state := seed
	next := func() float64 {
		state = state*1664525 + 1013904223
		return float64(state>>8) / (1 << 24)
	}

	p := &path.Data{}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r := rMin + (rMax-rMin)*next()
		q := pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}
