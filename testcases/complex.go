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

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "glyph_o",
		Path:   glyphO(32, 32, 24, 28, 14, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "tight_u",
		Path:   tightU(32, 32, 15, 4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "gear",
		Path:   gear(64, 64, 50, 38, 14),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "polygon_100",
		Path:   regularPolygon(64, 64, 56, 100),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
}

// mixedLinesCurves builds a path combining line segments and Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape similar to a lowercase 'a'. The counter is
// reached through a zero-width slit, so that the whole outline is a single
// sub-path.
func glyphLikeShape() *path.Data {
	cx, cy := 32.0, 38.0
	r := 18.0
	k := r * kappa

	p := (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	ir := 8.0
	ik := ir * kappa
	return p.
		LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// glyphO builds an 'o' as two ellipses of opposite orientation.
func glyphO(cx, cy, rxOuter, ryOuter, rxInner, ryInner float64) *path.Data {
	p := ellipseTo(&path.Data{}, cx, cy, rxOuter, ryOuter, false)
	return ellipseTo(p, cx, cy, rxInner, ryInner, true)
}

// ellipseTo appends an axis-aligned ellipse made of four cubic arcs.
func ellipseTo(p *path.Data, cx, cy, rx, ry float64, reversed bool) *path.Data {
	kx, ky := rx*kappa, ry*kappa
	if reversed {
		ky = -ky
		ry = -ry
	}
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// tightU builds a thick U shape whose inner turn has a small radius.
func tightU(cx, cy, r, thickness float64) *path.Data {
	k := r * kappa
	ri := r - thickness
	ki := ri * kappa
	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-r)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-r)).
		LineTo(pt(cx+ri, cy-r)).
		LineTo(pt(cx+ri, cy)).
		CubeTo(pt(cx+ri, cy+ki), pt(cx+ki, cy+ri), pt(cx, cy+ri)).
		CubeTo(pt(cx-ki, cy+ri), pt(cx-ri, cy+ki), pt(cx-ri, cy)).
		LineTo(pt(cx-ri, cy-r)).
		Close()
}

// gear builds a star-shaped polygon with alternating outer and inner
// radius, giving many split and merge vertices.
func gear(cx, cy, rOuter, rInner float64, teeth int) *path.Data {
	n := 4 * teeth
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		r := rInner
		if i%4 == 1 || i%4 == 2 {
			r = rOuter
		}
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	return polygon(pts...)
}

// regularPolygon builds a convex polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	return polygon(pts...)
}
