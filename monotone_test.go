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
	"math"
	"testing"

	"seehuhn.de/go/tessellate/bezier"
)

type monotoneInput struct {
	pos  bezier.Point
	side side
}

// monotoneCases are y-monotone polygons, given as the vertices in sweep
// order. The first vertex is the top and the last vertex is the bottom.
var monotoneCases = []struct {
	name     string
	vertices []monotoneInput
	want     int
}{
	{
		name: "triangle",
		vertices: []monotoneInput{
			{bezier.Point{X: 0, Y: 0}, left},
			{bezier.Point{X: -1, Y: 1}, left},
			{bezier.Point{X: 1, Y: 2}, right},
		},
		want: 1,
	},
	{
		name: "both_sides",
		vertices: []monotoneInput{
			{bezier.Point{X: 0, Y: 0}, left},
			{bezier.Point{X: 1, Y: 1}, right},
			{bezier.Point{X: -1.5, Y: 2}, left},
			{bezier.Point{X: -1, Y: 3}, left},
			{bezier.Point{X: 1, Y: 4}, right},
			{bezier.Point{X: 0, Y: 5}, left},
		},
		want: 4,
	},
	{
		name: "right_chain",
		vertices: []monotoneInput{
			{bezier.Point{X: 0, Y: 0}, left},
			{bezier.Point{X: 1, Y: 1}, right},
			{bezier.Point{X: 3, Y: 2}, right},
			{bezier.Point{X: 1, Y: 3}, right},
			{bezier.Point{X: 1, Y: 4}, right},
			{bezier.Point{X: 4, Y: 5}, right},
			{bezier.Point{X: 0, Y: 6}, left},
		},
		want: 5,
	},
	{
		name: "left_chain",
		vertices: []monotoneInput{
			{bezier.Point{X: 0, Y: 0}, left},
			{bezier.Point{X: -1, Y: 1}, left},
			{bezier.Point{X: -3, Y: 2}, left},
			{bezier.Point{X: -1, Y: 3}, left},
			{bezier.Point{X: -1, Y: 4}, left},
			{bezier.Point{X: -4, Y: 5}, left},
			{bezier.Point{X: 0, Y: 6}, left},
		},
		want: 5,
	},
	{
		name:     "long_convex",
		vertices: convexMonotone(40),
		want:     38,
	},
}

// convexMonotone returns n vertices on the boundary of an ellipse which is
// much taller than wide, alternating between the sides.
func convexMonotone(n int) []monotoneInput {
	res := []monotoneInput{{bezier.Point{X: 0, Y: 0}, left}}
	for i := 1; i < n-1; i++ {
		phi := math.Pi * float64(i) / float64(n-1)
		x := float32(math.Sin(phi))
		y := float32(50 * (1 - math.Cos(phi)))
		s := left
		if i%2 == 0 {
			s = right
		} else {
			x = -x
		}
		res = append(res, monotoneInput{bezier.Point{X: x, Y: y}, s})
	}
	return append(res, monotoneInput{bezier.Point{X: 0, Y: 100}, left})
}

// polygonOf returns the vertices of a monotone polygon in boundary order:
// down the left chain, then up the right chain.
func polygonOf(vertices []monotoneInput) []bezier.Point {
	var l, r []bezier.Point
	for i, v := range vertices {
		if i == 0 || i == len(vertices)-1 || v.side == left {
			l = append(l, v.pos)
		} else {
			r = append(r, v.pos)
		}
	}
	for i := len(r) - 1; i >= 0; i-- {
		l = append(l, r[i])
	}
	return l
}

func polygonArea(pts []bezier.Point) float64 {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return math.Abs(area) / 2
}

func checkMonotoneTriangles(t *testing.T, vertices []monotoneInput, triangles []triangle, want int) {
	t.Helper()

	if len(triangles) != want {
		t.Errorf("got %d triangles, want %d", len(triangles), want)
	}

	var area float64
	for _, tri := range triangles {
		a := vertices[tri[0]].pos
		b := vertices[tri[1]].pos
		c := vertices[tri[2]].pos
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross > 0 {
			t.Errorf("triangle %v has wrong orientation", tri)
		}
		area += math.Abs(float64(cross)) / 2
	}
	wantArea := polygonArea(polygonOf(vertices))
	if math.Abs(area-wantArea) > 1e-4*wantArea {
		t.Errorf("triangle area %g, want %g", area, wantArea)
	}
}

func TestBasicMonotone(t *testing.T) {
	var tess basicMonotone
	for _, c := range monotoneCases {
		t.Run(c.name, func(t *testing.T) {
			n := len(c.vertices)
			tess.begin(c.vertices[0].pos, 0)
			for i := 1; i < n-1; i++ {
				tess.vertex(c.vertices[i].pos, VertexID(i), c.vertices[i].side)
			}
			tess.end(c.vertices[n-1].pos, VertexID(n-1))
			checkMonotoneTriangles(t, c.vertices, tess.triangles, c.want)
		})
	}
}

func TestMonotoneTessellator(t *testing.T) {
	var tess monotoneTessellator
	for _, c := range monotoneCases {
		t.Run(c.name, func(t *testing.T) {
			n := len(c.vertices)
			tess.begin(c.vertices[0].pos, 0)
			for i := 1; i < n-1; i++ {
				tess.vertex(c.vertices[i].pos, VertexID(i), c.vertices[i].side)
			}
			tess.end(c.vertices[n-1].pos, VertexID(n-1))
			checkMonotoneTriangles(t, c.vertices, tess.tess.triangles, c.want)
		})
	}
}

func TestMonotoneFlush(t *testing.T) {
	var tess basicMonotone
	tess.begin(bezier.Point{X: 0, Y: 0}, 0)
	tess.vertex(bezier.Point{X: -1, Y: 1}, 1, left)
	tess.end(bezier.Point{X: 1, Y: 2}, 2)

	buf := &VertexBuffers[bezier.Point]{}
	out := NewBuffersBuilder(buf, Positions)
	out.BeginGeometry()
	tess.flush(out)
	count := out.EndGeometry()

	if count.Indices != 3 {
		t.Errorf("got %d indices, want 3", count.Indices)
	}
	if len(tess.triangles) != 0 {
		t.Error("flush did not clear the triangles")
	}
}

func TestSideOpposite(t *testing.T) {
	if left.opposite() != right || right.opposite() != left {
		t.Error("opposite is not an involution")
	}
	if left.String() == right.String() {
		t.Error("sides have the same name")
	}
}
